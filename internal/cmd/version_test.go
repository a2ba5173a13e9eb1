package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestVersionText(t *testing.T) {
	var out bytes.Buffer
	app := &App{Out: &out, Err: &bytes.Buffer{}}

	cmd := newVersionCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	if !strings.Contains(out.String(), "jsonstore version "+Version) {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestVersionJSON(t *testing.T) {
	var out bytes.Buffer
	app := &App{Out: &out, Err: &bytes.Buffer{}, JSON: true}

	cmd := newVersionCmd(NewTestProvider(app))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	var result map[string]string
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if result["version"] != Version {
		t.Errorf("expected version %q, got %q", Version, result["version"])
	}
}
