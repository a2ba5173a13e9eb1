package e2etests

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// 04: Defaults from a YAML file, reset and rm.
func caseDefaultsResetRm(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	defaults := filepath.Join(sandbox, "defaults.yaml")
	if err := os.WriteFile(defaults, []byte("theme: light\nfontSize: 12\n"), 0644); err != nil {
		return "", err
	}
	flags := []string{"--defaults", defaults}
	run := func(args ...string) (RunResult, error) {
		return mustRun(r, sandbox, append(flags, args...)...)
	}

	result, err := run("read")
	if err != nil {
		return "", err
	}
	section(&out, "read defaults", n.NormalizeText(result.Stdout))

	if _, err := run("set", "theme", "dark", "extra", "x"); err != nil {
		return "", err
	}

	result, err = run("reset")
	if err != nil {
		return "", err
	}
	section(&out, "reset", n.NormalizeText(result.Stdout))

	result, err = run("read", "--yaml")
	if err != nil {
		return "", err
	}
	section(&out, "read yaml after reset", n.NormalizeText(result.Stdout))

	result, err = run("rm")
	if err != nil {
		return "", err
	}
	section(&out, "rm", n.NormalizeText(result.Stdout))

	_, statErr := os.Stat(storeFile(sandbox))
	section(&out, "file removed", strconv.FormatBool(os.IsNotExist(statErr)))

	result = r.Run(sandbox, "rm")
	sectionExitCode(&out, "rm again", result.ExitCode)

	return out.String(), nil
}

