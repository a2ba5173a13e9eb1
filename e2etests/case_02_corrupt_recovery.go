package e2etests

import (
	"os"
	"strconv"
	"strings"
)

// 02: An unparsable file is backed up and replaced by the defaults.
func caseCorruptRecovery(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	if err := os.WriteFile(storeFile(sandbox), []byte(`{"theme": "dark",`), 0644); err != nil {
		return "", err
	}

	result, err := mustRun(r, sandbox, "read")
	if err != nil {
		return "", err
	}
	section(&out, "read corrupt file", n.NormalizeText(result.Stdout))
	section(&out, "warned", strconv.FormatBool(strings.Contains(result.Stderr, "level=WARN")))

	backup, err := os.ReadFile(storeFile(sandbox) + ".bak")
	if err != nil {
		return "", err
	}
	section(&out, "backup content", n.NormalizeText(string(backup)))

	result, err = mustRun(r, sandbox, "path", "--backup")
	if err != nil {
		return "", err
	}
	section(&out, "backup path", n.NormalizeText(result.Stdout))

	// The recovered file is valid, so the next read is silent.
	result, err = mustRun(r, sandbox, "read")
	if err != nil {
		return "", err
	}
	section(&out, "second read stderr empty", strconv.FormatBool(result.Stderr == ""))

	return out.String(), nil
}
