package e2etests

import (
	"os"
	"strings"
)

// 01: Set and read values of every JSON kind.
func caseSetGet(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	result, err := mustRun(r, sandbox, "set", "theme", "dark")
	if err != nil {
		return "", err
	}
	section(&out, "set theme", n.NormalizeText(result.Stdout))

	result, err = mustRun(r, sandbox, "get", "theme")
	if err != nil {
		return "", err
	}
	section(&out, "get theme", n.NormalizeText(result.Stdout))

	result, err = mustRun(r, sandbox, "set", "fontSize", "14", "lineNumbers", "true", "window", `{"width":800}`)
	if err != nil {
		return "", err
	}
	section(&out, "set several", n.NormalizeText(result.Stdout))

	result, err = mustRun(r, sandbox, "get", "fontSize", "window", "missing")
	if err != nil {
		return "", err
	}
	section(&out, "get several", n.NormalizeText(result.Stdout))

	result, err = mustRunJSON(r, sandbox, "get", "theme")
	if err != nil {
		return "", err
	}
	section(&out, "get theme json", n.NormalizeJSON([]byte(result.Stdout)))

	raw, err := os.ReadFile(storeFile(sandbox))
	if err != nil {
		return "", err
	}
	section(&out, "file content", n.NormalizeText(string(raw)))

	result, err = mustRun(r, sandbox, "keys")
	if err != nil {
		return "", err
	}
	section(&out, "keys", n.NormalizeText(result.Stdout))

	return out.String(), nil
}
