// Package paths computes default storage locations: the root of the
// enclosing project and the per-user configuration directory of the OS.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrNoProjectRoot is returned when no marker is found between the start
// directory and the filesystem root.
var ErrNoProjectRoot = errors.New("no project root found")

// DefaultMarkers are the files or directories that identify a project root.
var DefaultMarkers = []string{"go.mod", ".git"}

// ProjectRoot walks from start toward the filesystem root and returns the
// first directory containing one of markers. If start is empty the current
// working directory is used; if markers is empty DefaultMarkers is used.
func ProjectRoot(start string, markers ...string) (string, error) {
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("cannot get current directory: %w", err)
		}
		start = cwd
	}
	if len(markers) == 0 {
		markers = DefaultMarkers
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	dir := abs
	for {
		for _, marker := range markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("checking %s: %w", filepath.Join(dir, marker), err)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched from %s to %s)", ErrNoProjectRoot, abs, dir)
		}
		dir = parent
	}
}

// OSConfigDir returns the directory where app should keep its configuration
// on the current operating system. The directory is not created.
func OSConfigDir(app string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return configDir(runtime.GOOS, home, os.Getenv, app), nil
}

// configDir is the pure part of OSConfigDir.
func configDir(goos, home string, getenv func(string) string, app string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Preferences", app)
	case "windows":
		appData := getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, app, "Config")
	default:
		if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, app)
		}
		return filepath.Join(home, ".config", app)
	}
}
