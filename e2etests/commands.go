package e2etests

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// knownCommands is the registry of all jsonstore commands that should be tested.
var knownCommands = map[string]bool{
	"path":    true,
	"read":    true,
	"get":     true,
	"set":     true,
	"has":     true,
	"delete":  true,
	"keys":    true,
	"reset":   true,
	"rm":      true,
	"version": true,
	"watch":   true,
}

// ignoredCommands are commands discovered via --help that we intentionally skip.
var ignoredCommands = map[string]bool{
	"help":       true,
	"completion": true,
}

// commandLinePattern matches "  <command>  <description>" in help output.
var commandLinePattern = regexp.MustCompile(`^\s{2}(\S+)\s{2,}`)

// DiscoverCommands runs jsonstore --help and returns the commands that are
// not in the knownCommands registry.
func DiscoverCommands(r *Runner) ([]string, error) {
	result := r.Run("", "--help")
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("jsonstore --help failed: %s", result.Stderr)
	}

	var unknown []string
	for _, cmd := range parseCommandsFromHelp(result.Stdout) {
		if !knownCommands[cmd] && !ignoredCommands[cmd] {
			unknown = append(unknown, cmd)
		}
	}
	sort.Strings(unknown)
	return unknown, nil
}

// parseCommandsFromHelp extracts command names from the "Available Commands:"
// block of cobra help output.
func parseCommandsFromHelp(help string) []string {
	var cmds []string
	inCommands := false
	for _, line := range strings.Split(help, "\n") {
		if strings.HasPrefix(line, "Available Commands:") {
			inCommands = true
			continue
		}
		if !inCommands {
			continue
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		if m := commandLinePattern.FindStringSubmatch(line); m != nil {
			cmds = append(cmds, m[1])
		}
	}
	return cmds
}
