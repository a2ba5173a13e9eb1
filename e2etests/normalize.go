package e2etests

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Normalizer replaces run-specific values so output can be compared
// against expected files.
type Normalizer struct {
	sandbox string
}

// NewNormalizer creates a Normalizer for the given sandbox path.
func NewNormalizer(sandbox string) *Normalizer {
	return &Normalizer{sandbox: sandbox}
}

// NormalizeText replaces the sandbox path with $SANDBOX and trims trailing
// newlines.
func (n *Normalizer) NormalizeText(s string) string {
	if n.sandbox != "" {
		s = strings.ReplaceAll(s, n.sandbox, "$SANDBOX")
	}
	return strings.TrimRight(s, "\n")
}

// NormalizeJSON re-indents JSON output with sorted keys. Invalid JSON is
// returned as normalized text.
func (n *Normalizer) NormalizeJSON(input []byte) string {
	var v any
	if err := json.Unmarshal(input, &v); err != nil {
		return n.NormalizeText(string(input))
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return n.NormalizeText(string(input))
	}
	return n.NormalizeText(buf.String())
}
