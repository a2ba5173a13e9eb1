package e2etests

import "strings"

// 03: Delete keys and query presence.
func caseDeleteHas(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	if _, err := mustRun(r, sandbox, "set", "a", "1", "b", "2", "c", "null"); err != nil {
		return "", err
	}

	result, err := mustRun(r, sandbox, "has", "a", "c")
	if err != nil {
		return "", err
	}
	section(&out, "has a c", n.NormalizeText(result.Stdout))

	result, err = mustRun(r, sandbox, "delete", "a", "zzz")
	if err != nil {
		return "", err
	}
	section(&out, "delete a zzz", n.NormalizeText(result.Stdout))

	result, err = mustRun(r, sandbox, "has", "a")
	if err != nil {
		return "", err
	}
	section(&out, "has a", n.NormalizeText(result.Stdout))

	result, err = mustRunJSON(r, sandbox, "delete", "b")
	if err != nil {
		return "", err
	}
	section(&out, "delete b json", n.NormalizeJSON([]byte(result.Stdout)))

	result, err = mustRunJSON(r, sandbox, "keys")
	if err != nil {
		return "", err
	}
	section(&out, "keys json", n.NormalizeJSON([]byte(result.Stdout)))

	result = r.Run(sandbox, "delete")
	sectionExitCode(&out, "delete without keys", result.ExitCode)

	return out.String(), nil
}
