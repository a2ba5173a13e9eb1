// Package store implements a file-backed key-value store. The whole store
// is a single JSON object on disk, validated against a schema on every read
// and every write.
//
// The file is the only source of truth: every operation re-reads it, so
// edits made by other processes or by hand are always visible. A file that
// cannot be parsed or no longer satisfies the schema is copied to
// "<path>.bak" and replaced with the defaults.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"jsonstore/filesystem"
	"jsonstore/internal/jsonvalue"
	"jsonstore/paths"
	"jsonstore/schema"
)

const (
	// DefaultName is the file name used when Options.Name is empty.
	DefaultName = "store.json"

	backupSuffix = ".bak"
	filePerm     = 0644
	dirPerm      = 0755
)

// Value is the object held by a store.
type Value = map[string]any

// Options configures a Store. Every field is optional.
type Options struct {
	// Name is the file name. A ".json" suffix is appended if missing.
	Name string

	// Dir is the directory holding the file. Defaults to the project root
	// of the current working directory.
	Dir string

	// Schema validates the stored object. Defaults to schema.Loose().
	Schema schema.Validator

	// Defaults is the initial content and the reset target. It may be a
	// map or any JSON-encodable Go value. Defaults to an empty object.
	Defaults any

	// FS is the filesystem the store lives on. Defaults to the OS.
	FS filesystem.FS

	// Logger receives corruption-recovery warnings and debug output.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Store is a JSON file validated against a schema.
// A Store holds no mutable state and may be reused for sequential calls.
type Store struct {
	path     string
	schema   schema.Validator
	defaults Value
	fs       filesystem.FS
	log      *slog.Logger
}

// New creates a Store. The defaults are validated immediately; if they do
// not satisfy the schema New returns a *ConfigError. The file itself is not
// touched until the first operation.
func New(opts Options) (*Store, error) {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}
	if strings.ContainsAny(name, "/\\") {
		return nil, fmt.Errorf("store name %q contains path separator", name)
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}

	dir := opts.Dir
	if dir == "" {
		root, err := paths.ProjectRoot("")
		if err != nil {
			return nil, fmt.Errorf("resolving store directory: %w", err)
		}
		dir = root
	}
	path, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("resolving store path: %w", err)
	}

	s := &Store{
		path:   path,
		schema: opts.Schema,
		fs:     opts.FS,
		log:    opts.Logger,
	}
	if s.schema == nil {
		s.schema = schema.Loose()
	}
	if s.fs == nil {
		s.fs = filesystem.OS()
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	var defaults any = opts.Defaults
	if defaults == nil {
		defaults = Value{}
	}
	raw, err := normalize("", defaults)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	validated, err := s.validate(raw)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	s.defaults = validated

	return s, nil
}

// Path returns the absolute path of the backing file.
func (s *Store) Path() string {
	return s.path
}

// BackupPath returns where corrupt content is preserved.
func (s *Store) BackupPath() string {
	return s.path + backupSuffix
}

// Defaults returns a copy of the defaults.
func (s *Store) Defaults() Value {
	return cloneValue(s.defaults)
}

// Read returns the current content of the store.
//
// A missing file is created with the defaults. A file that is not valid
// JSON, or does not satisfy the schema, is copied verbatim to BackupPath
// and replaced with the defaults; this is logged, not returned as an error.
// Only I/O failures are returned.
func (s *Store) Read() (Value, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, fmt.Errorf("checking store file: %w", err)
	}
	if !exists {
		return s.Reset()
	}

	raw, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}

	v, err := s.parse(raw)
	if err != nil {
		return s.recoverCorrupt(raw, err)
	}
	return v, nil
}

// Set stores value under key. The value is checked for JSON compatibility
// before anything is read or written.
func (s *Store) Set(key string, value any) error {
	return s.SetAll(map[string]any{key: value})
}

// SetAll merges values into the store. Either every value is JSON
// compatible and all of them are applied, or none are.
func (s *Store) SetAll(values map[string]any) error {
	normalized, err := normalizeValues(values)
	if err != nil {
		return err
	}

	current, err := s.Read()
	if err != nil {
		return err
	}
	for k, v := range normalized {
		current[k] = v
	}
	return s.persist(current)
}

// Get returns the value stored under key and whether it was present.
func (s *Store) Get(key string) (any, bool, error) {
	current, err := s.Read()
	if err != nil {
		return nil, false, err
	}
	v, ok := current[key]
	return v, ok, nil
}

// GetMany returns a new object holding the requested keys that are present,
// all taken from a single read.
func (s *Store) GetMany(keys ...string) (Value, error) {
	current, err := s.Read()
	if err != nil {
		return nil, err
	}
	out := make(Value, len(keys))
	for _, k := range keys {
		if v, ok := current[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

// Has reports whether every key is present.
func (s *Store) Has(keys ...string) (bool, error) {
	current, err := s.Read()
	if err != nil {
		return false, err
	}
	for _, k := range keys {
		if _, ok := current[k]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// Delete removes keys and reports whether all of them were present.
// The file is only written if at least one key was removed.
func (s *Store) Delete(keys ...string) (bool, error) {
	deleted, err := s.DeleteKeys(keys...)
	if err != nil {
		return false, err
	}
	for _, k := range keys {
		if !contains(deleted, k) {
			return false, nil
		}
	}
	return true, nil
}

// DeleteKeys removes keys and returns the ones that were present, in
// argument order. The result and the write come from a single read, and
// nothing is written when none of the keys exist.
func (s *Store) DeleteKeys(keys ...string) ([]string, error) {
	current, err := s.Read()
	if err != nil {
		return nil, err
	}

	var deleted []string
	for _, k := range keys {
		if _, ok := current[k]; ok && !contains(deleted, k) {
			deleted = append(deleted, k)
		}
	}
	if len(deleted) == 0 {
		return nil, nil
	}

	next := make(Value, len(current))
	for k, v := range current {
		if !contains(deleted, k) {
			next[k] = v
		}
	}
	if err := s.persist(next); err != nil {
		return nil, err
	}
	return deleted, nil
}

// Reset overwrites the file with the defaults and returns them.
func (s *Store) Reset() (Value, error) {
	if err := s.persist(s.defaults); err != nil {
		return nil, err
	}
	return cloneValue(s.defaults), nil
}

// Rm deletes the backing file. It is not an error if the file is missing.
func (s *Store) Rm() error {
	if err := s.fs.Remove(s.path); err != nil {
		return fmt.Errorf("removing store file: %w", err)
	}
	return nil
}

// Keys returns the keys currently stored, sorted.
func (s *Store) Keys() ([]string, error) {
	current, err := s.Read()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(current))
	for k := range current {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Update reads the store, lets fn modify the value in place, and writes
// the result. Nothing is written if fn returns an error.
func (s *Store) Update(fn func(Value) error) error {
	current, err := s.Read()
	if err != nil {
		return err
	}
	if err := fn(current); err != nil {
		return err
	}

	next := make(Value, len(current))
	for k, v := range current {
		n, err := normalize(k, v)
		if err != nil {
			return err
		}
		next[k] = n
	}
	return s.persist(next)
}

// Decode reads the store and decodes it into v, which should be a pointer
// to a struct or map.
func (s *Store) Decode(v any) error {
	current, err := s.Read()
	if err != nil {
		return err
	}
	data, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding store: %w", err)
	}
	return nil
}

// parse decodes and validates the raw file content.
func (s *Store) parse(raw []byte) (Value, error) {
	data, err := jsonvalue.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing store file: %w", err)
	}
	return s.validate(data)
}

// recoverCorrupt backs up corrupt content and resets the store.
func (s *Store) recoverCorrupt(raw []byte, cause error) (Value, error) {
	backup := s.BackupPath()
	if err := s.fs.WriteFile(backup, raw, filePerm); err != nil {
		return nil, fmt.Errorf("backing up corrupt store file: %w", err)
	}

	defaults, err := s.Reset()
	if err != nil {
		return nil, err
	}

	s.log.Warn("store file was invalid and has been reset to defaults",
		"path", s.path,
		"backup", backup,
		"error", cause,
	)
	return defaults, nil
}

// validate runs the schema over data.
func (s *Store) validate(data any) (Value, error) {
	v, err := s.schema.Validate(data)
	if err != nil {
		return nil, &SchemaError{Err: err}
	}
	if v == nil {
		v = Value{}
	}
	return v, nil
}

// persist validates data and replaces the file with it.
func (s *Store) persist(data Value) error {
	validated, err := s.validate(data)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(validated, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	out = append(out, '\n')

	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	if err := s.fs.WriteFile(s.path, out, filePerm); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}

	s.log.Debug("store written", "path", s.path, "keys", len(validated))
	return nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
