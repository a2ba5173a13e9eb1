// Package filesystem provides the file primitives the store is built on:
// existence checks, whole-file reads, atomic whole-file writes, removal and
// recursive directory creation. It is backed by an afero.Fs so callers can
// swap the OS filesystem for an in-memory one.
package filesystem

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS is the filesystem interface the store uses.
// This allows injection of in-memory or failing filesystems for testing.
type FS interface {
	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the contents of path with data, creating it if
	// necessary. Readers never observe a partially written file.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Remove deletes a file. Removing a missing file is not an error.
	Remove(path string) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm fs.FileMode) error
}

// AferoFS implements FS on top of an afero.Fs.
type AferoFS struct {
	fs afero.Fs
}

// New wraps an afero.Fs.
func New(fsys afero.Fs) *AferoFS {
	return &AferoFS{fs: fsys}
}

// OS returns an FS backed by the operating system.
func OS() *AferoFS {
	return New(afero.NewOsFs())
}

// Memory returns an FS that lives entirely in memory.
func Memory() *AferoFS {
	return New(afero.NewMemMapFs())
}

// Afero returns the underlying afero.Fs.
func (a *AferoFS) Afero() afero.Fs {
	return a.fs
}

// Exists reports whether path exists.
func (a *AferoFS) Exists(path string) (bool, error) {
	return afero.Exists(a.fs, path)
}

// ReadFile reads the entire contents of a file.
func (a *AferoFS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// WriteFile writes data to a temporary sibling, syncs it and renames it
// over path.
func (a *AferoFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp."+hex.EncodeToString(randBytes))

	f, err := a.fs.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		a.fs.Remove(tmp)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		a.fs.Remove(tmp)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		a.fs.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := a.fs.Rename(tmp, path); err != nil {
		a.fs.Remove(tmp) // best effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Remove deletes a file. A missing file is not an error.
func (a *AferoFS) Remove(path string) error {
	if err := a.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MkdirAll creates a directory and all parent directories.
func (a *AferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// Compile-time check that AferoFS implements FS.
var _ FS = (*AferoFS)(nil)
