package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jsonstore/internal/config"
)

// runRoot executes the full command tree with a fresh provider.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	provider := NewProvider(&out, &errOut)
	rootCmd, err := newRootCmd(provider)
	if err != nil {
		t.Fatalf("newRootCmd: %v", err)
	}
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootSetThenGet(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runRoot(t, "--dir", dir, "set", "theme", "dark"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	out, _, err := runRoot(t, "--dir", dir, "get", "theme")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out != "dark\n" {
		t.Errorf("expected %q, got %q", "dark\n", out)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "store.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "{\n  \"theme\": \"dark\"\n}\n" {
		t.Errorf("unexpected file content %q", raw)
	}
}

func TestRootNameFlag(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runRoot(t, "--dir", dir, "--name", "prefs", "path")
	if err != nil {
		t.Fatalf("path failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != filepath.Join(dir, "prefs.json") {
		t.Errorf("expected prefs.json in %s, got %q", dir, got)
	}
}

func TestRootEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvDir, dir)
	t.Setenv(config.EnvJSON, "true")

	out, _, err := runRoot(t, "path")
	if err != nil {
		t.Fatalf("path failed: %v", err)
	}
	var result map[string]string
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("expected JSON output from JSONSTORE_JSON, got %q", out)
	}
	if result["path"] != filepath.Join(dir, "store.json") {
		t.Errorf("expected path in %s, got %q", dir, result["path"])
	}
}

func TestRootDefaultsFile(t *testing.T) {
	dir := t.TempDir()
	defaults := filepath.Join(t.TempDir(), "defaults.toml")
	if err := os.WriteFile(defaults, []byte("theme = \"light\"\nfontSize = 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runRoot(t, "--dir", dir, "--defaults", defaults, "get", "fontSize")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out != "12\n" {
		t.Errorf("expected %q, got %q", "12\n", out)
	}
}

func TestRootStrictSchema(t *testing.T) {
	dir := t.TempDir()
	schemaFile := filepath.Join(t.TempDir(), "schema.json")
	doc := `{"type": "object", "properties": {"theme": {"type": "string"}}}`
	if err := os.WriteFile(schemaFile, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runRoot(t, "--dir", dir, "--schema", schemaFile, "set", "other", "1"); err != nil {
		t.Fatalf("loose set failed: %v", err)
	}
	// "other" is already in the file, so strict mode resets it first.
	if _, _, err := runRoot(t, "--dir", dir, "--schema", schemaFile, "--strict", "set", "theme", "dark"); err != nil {
		t.Fatalf("strict set failed: %v", err)
	}
	_, _, err := runRoot(t, "--dir", dir, "--schema", schemaFile, "--strict", "set", "another", "1")
	if err == nil {
		t.Fatal("expected strict schema to reject undeclared key")
	}
}

func TestRootCorruptFileWarns(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "store.json"), []byte("[1, 2"), 0644); err != nil {
		t.Fatal(err)
	}

	out, errOut, err := runRoot(t, "--dir", dir, "read")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if out != "{}\n" {
		t.Errorf("expected empty object, got %q", out)
	}
	if !strings.Contains(errOut, "level=WARN") {
		t.Errorf("expected a warning on stderr, got %q", errOut)
	}
	if _, err := os.Stat(filepath.Join(dir, "store.json.bak")); err != nil {
		t.Errorf("backup missing: %v", err)
	}
}

func TestRootVerboseLogsDebug(t *testing.T) {
	dir := t.TempDir()

	_, errOut, err := runRoot(t, "--dir", dir, "-v", "set", "a", "1")
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !strings.Contains(errOut, "level=DEBUG") {
		t.Errorf("expected debug output with -v, got %q", errOut)
	}
}

func TestRootInvalidDefaults(t *testing.T) {
	dir := t.TempDir()
	schemaFile := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(schemaFile, []byte(`{"type": "object", "required": ["must"]}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runRoot(t, "--dir", dir, "--schema", schemaFile, "read")
	if err == nil || !strings.Contains(err.Error(), "invalid defaults") {
		t.Fatalf("expected invalid defaults error, got %v", err)
	}
}
