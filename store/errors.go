package store

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is wrapped by SerializationError when a value contains
// a Go type that has no JSON representation.
var ErrUnsupportedType = errors.New("unsupported type")

// ConfigError is returned by New when the defaults do not satisfy the
// schema. The store cannot be used.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("store: invalid defaults: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SchemaError is returned when a value about to be written does not
// satisfy the schema. The file is left unchanged.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("store: schema validation failed: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// SerializationError is returned by Set and SetAll when a value cannot be
// represented as JSON. It is raised before any file is read or written.
type SerializationError struct {
	Key  string
	Type string // Go type of the offending value
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("store: value for key %q has type %s which cannot be stored as JSON: %v", e.Key, e.Type, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
