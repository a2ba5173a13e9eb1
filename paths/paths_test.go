package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestProjectRoot_FindsMarkerInStartDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ProjectRoot(dir)
	if err != nil {
		t.Fatalf("ProjectRoot: %v", err)
	}
	if got != dir {
		t.Errorf("ProjectRoot = %q, want %q", got, dir)
	}
}

func TestProjectRoot_WalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ProjectRoot(nested)
	if err != nil {
		t.Fatalf("ProjectRoot: %v", err)
	}
	if got != root {
		t.Errorf("ProjectRoot = %q, want %q", got, root)
	}
}

func TestProjectRoot_CustomMarker(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src")
	if err := os.Mkdir(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ProjectRoot(nested, "package.json")
	if err != nil {
		t.Fatalf("ProjectRoot: %v", err)
	}
	if got != root {
		t.Errorf("ProjectRoot = %q, want %q", got, root)
	}
}

func TestProjectRoot_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := ProjectRoot(dir, "no-such-marker-7f3a")
	if err == nil {
		t.Fatal("expected error when no marker exists")
	}
	if !errors.Is(err, ErrNoProjectRoot) {
		t.Errorf("error = %v, want ErrNoProjectRoot", err)
	}
}

func TestConfigDir(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	tests := []struct {
		name string
		goos string
		env  map[string]string
		want string
	}{
		{
			name: "linux default",
			goos: "linux",
			want: filepath.Join("/home/u", ".config", "app"),
		},
		{
			name: "linux xdg",
			goos: "linux",
			env:  map[string]string{"XDG_CONFIG_HOME": "/xdg"},
			want: filepath.Join("/xdg", "app"),
		},
		{
			name: "darwin",
			goos: "darwin",
			env:  map[string]string{"XDG_CONFIG_HOME": "/ignored"},
			want: filepath.Join("/home/u", "Library", "Preferences", "app"),
		},
		{
			name: "windows appdata",
			goos: "windows",
			env:  map[string]string{"APPDATA": "/appdata"},
			want: filepath.Join("/appdata", "app", "Config"),
		},
		{
			name: "windows fallback",
			goos: "windows",
			want: filepath.Join("/home/u", "AppData", "Roaming", "app", "Config"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := configDir(tt.goos, "/home/u", env(tt.env), "app")
			if got != tt.want {
				t.Errorf("configDir = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOSConfigDir_EndsWithApp(t *testing.T) {
	dir, err := OSConfigDir("jsonstore-test")
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("OSConfigDir = %q, want absolute path", dir)
	}
}
