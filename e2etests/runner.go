package e2etests

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Runner executes jsonstore commands against a sandbox directory.
type Runner struct {
	Cmd string // path to jsonstore binary
}

// SetupSandbox creates a fresh, empty sandbox directory.
func (r *Runner) SetupSandbox() (string, error) {
	dir, err := os.MkdirTemp("", "jsonstore-e2e-")
	if err != nil {
		return "", fmt.Errorf("setup sandbox failed: %w", err)
	}
	return dir, nil
}

// TeardownSandbox removes a sandbox directory.
func (r *Runner) TeardownSandbox(path string) error {
	return os.RemoveAll(path)
}

// RunResult holds the output of a command execution.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes a jsonstore command with the given arguments.
// It runs inside the sandbox and sets JSONSTORE_DIR so the store file is
// created there.
func (r *Runner) Run(sandbox string, args ...string) RunResult {
	cmd := exec.Command(r.Cmd, args...)
	if sandbox != "" {
		cmd.Dir = sandbox
		cmd.Env = append(os.Environ(), "JSONSTORE_DIR="+sandbox)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	return RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// RunJSON executes a jsonstore command with the --json flag appended.
func (r *Runner) RunJSON(sandbox string, args ...string) RunResult {
	fullArgs := append(args, "--json")
	return r.Run(sandbox, fullArgs...)
}

// storeFile returns the default store file inside a sandbox.
func storeFile(sandbox string) string {
	return filepath.Join(sandbox, "store.json")
}
