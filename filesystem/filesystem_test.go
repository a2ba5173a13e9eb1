package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestWriteFile_CreatesAndOverwrites(t *testing.T) {
	fsys := OS()
	path := filepath.Join(t.TempDir(), "store.json")

	if err := fsys.WriteFile(path, []byte("first"), 0644); err != nil {
		t.Fatalf("WriteFile first: %v", err)
	}
	if err := fsys.WriteFile(path, []byte("second"), 0644); err != nil {
		t.Fatalf("WriteFile second: %v", err)
	}

	got, err := fsys.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("ReadFile = %q, want %q", got, "second")
	}
}

func TestWriteFile_NoTempFilesLeft(t *testing.T) {
	fsys := OS()
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")

	if err := fsys.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp.") {
			t.Errorf("unexpected file: %s (temp file not cleaned up?)", e.Name())
		}
	}
}

func TestWriteFile_FailureKeepsOriginal(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := afero.WriteFile(base, "/data/store.json", []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	fsys := New(afero.NewReadOnlyFs(base))
	if err := fsys.WriteFile("/data/store.json", []byte("replacement"), 0644); err == nil {
		t.Fatal("WriteFile on read-only fs should fail")
	}

	got, err := fsys.ReadFile("/data/store.json")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "original" {
		t.Errorf("ReadFile = %q, want %q (original)", got, "original")
	}
}

// recordingFs logs Sync and Rename calls in order.
type recordingFs struct {
	afero.Fs
	ops     []string
	syncErr error
}

type recordingFile struct {
	afero.File
	fs *recordingFs
}

func (r *recordingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := r.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &recordingFile{File: f, fs: r}, nil
}

func (r *recordingFs) Rename(oldname, newname string) error {
	r.ops = append(r.ops, "rename")
	return r.Fs.Rename(oldname, newname)
}

func (f *recordingFile) Sync() error {
	f.fs.ops = append(f.fs.ops, "sync")
	if f.fs.syncErr != nil {
		return f.fs.syncErr
	}
	return f.File.Sync()
}

func TestWriteFile_SyncsBeforeRename(t *testing.T) {
	rec := &recordingFs{Fs: afero.NewMemMapFs()}
	fsys := New(rec)

	if err := fsys.WriteFile("/store.json", []byte("{}"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if len(rec.ops) != 2 || rec.ops[0] != "sync" || rec.ops[1] != "rename" {
		t.Errorf("ops = %v, want [sync rename]", rec.ops)
	}
}

func TestWriteFile_SyncFailureKeepsOriginal(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := afero.WriteFile(base, "/store.json", []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}
	rec := &recordingFs{Fs: base, syncErr: errors.New("disk full")}
	fsys := New(rec)

	if err := fsys.WriteFile("/store.json", []byte("replacement"), 0644); err == nil {
		t.Fatal("WriteFile should fail when sync fails")
	}
	for _, op := range rec.ops {
		if op == "rename" {
			t.Error("renamed after failed sync")
		}
	}

	got, err := fsys.ReadFile("/store.json")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "original" {
		t.Errorf("ReadFile = %q, want %q", got, "original")
	}
	entries, err := afero.ReadDir(base, "/")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only store.json to remain, got %d entries", len(entries))
	}
}

func TestExists(t *testing.T) {
	fsys := Memory()

	ok, err := fsys.Exists("/missing.json")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Error("Exists(missing) = true, want false")
	}

	if err := fsys.WriteFile("/present.json", []byte("{}"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	ok, err = fsys.Exists("/present.json")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Error("Exists(present) = false, want true")
	}
}

func TestRemove_Missing(t *testing.T) {
	fsys := OS()
	path := filepath.Join(t.TempDir(), "nope.json")

	if err := fsys.Remove(path); err != nil {
		t.Errorf("Remove(missing) = %v, want nil", err)
	}
}

func TestRemove_Existing(t *testing.T) {
	fsys := Memory()
	if err := fsys.WriteFile("/a.json", []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := fsys.Remove("/a.json"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if ok, _ := fsys.Exists("/a.json"); ok {
		t.Error("file still exists after Remove")
	}
}

func TestMkdirAll_Idempotent(t *testing.T) {
	fsys := OS()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	for i := 0; i < 2; i++ {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("MkdirAll #%d: %v", i+1, err)
		}
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("path is not a directory")
	}
}
