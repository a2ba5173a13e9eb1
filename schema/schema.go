package schema

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"jsonstore/internal/jsonvalue"
)

// Validator checks a decoded JSON value and returns it as an object.
// Implementations must not mutate raw and must never return a partially
// valid value alongside an error.
type Validator interface {
	Validate(raw any) (map[string]any, error)
}

// Func adapts a plain function to the Validator interface.
type Func func(raw any) (map[string]any, error)

// Validate calls f(raw).
func (f Func) Validate(raw any) (map[string]any, error) {
	return f(raw)
}

// Option configures a JSONSchema.
type Option func(*options)

type options struct {
	additional    *bool
	applyDefaults bool
}

// AdditionalProperties controls whether keys not declared in the schema's
// properties are accepted at the top level. It overrides whatever the
// schema itself says.
func AdditionalProperties(allowed bool) Option {
	return func(o *options) {
		o.additional = &allowed
	}
}

// ApplyDefaults fills in missing top-level properties from their schema
// "default" keyword before validating.
func ApplyDefaults() Option {
	return func(o *options) {
		o.applyDefaults = true
	}
}

// JSONSchema is a Validator backed by a resolved JSON Schema.
type JSONSchema struct {
	schema        *jsonschema.Schema
	resolved      *jsonschema.Resolved
	applyDefaults bool
}

// New resolves s and returns a Validator for it. s is not modified.
func New(s *jsonschema.Schema, opts ...Option) (*JSONSchema, error) {
	if s == nil {
		return nil, fmt.Errorf("schema: nil schema")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s = s.CloneSchemas()
	if o.additional != nil {
		if *o.additional {
			s.AdditionalProperties = nil
		} else {
			s.AdditionalProperties = &jsonschema.Schema{Not: &jsonschema.Schema{}}
		}
	}

	resolved, err := s.Resolve(&jsonschema.ResolveOptions{ValidateDefaults: true})
	if err != nil {
		return nil, fmt.Errorf("schema: resolving: %w", err)
	}
	return &JSONSchema{
		schema:        s,
		resolved:      resolved,
		applyDefaults: o.applyDefaults,
	}, nil
}

// Loose returns a Validator that accepts any JSON object.
func Loose() *JSONSchema {
	s, err := New(&jsonschema.Schema{Type: "object"})
	if err != nil {
		panic(err)
	}
	return s
}

// For infers a schema from the Go type T. Struct types produce strict
// objects; pass AdditionalProperties(true) to accept unknown keys.
func For[T any](opts ...Option) (*JSONSchema, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, fmt.Errorf("schema: inferring: %w", err)
	}
	return New(s, opts...)
}

// Parse loads a JSON Schema document.
func Parse(data []byte, opts ...Option) (*JSONSchema, error) {
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("schema: parsing: %w", err)
	}
	return New(&s, opts...)
}

// Schema returns the underlying JSON Schema.
func (j *JSONSchema) Schema() *jsonschema.Schema {
	return j.schema
}

// Validate checks raw against the schema. raw is copied first, so defaults
// are applied to the returned value only. Numbers too large for float64 are
// checked by their nearest float64 but returned unchanged.
func (j *JSONSchema) Validate(raw any) (map[string]any, error) {
	obj, err := objectCopy(raw)
	if err != nil {
		return nil, err
	}

	if j.applyDefaults {
		if err := j.resolved.ApplyDefaults(&obj); err != nil {
			return nil, &ValidationError{Message: err.Error(), Err: err}
		}
	}
	if err := j.resolved.Validate(jsonvalue.Float64s(obj)); err != nil {
		return nil, &ValidationError{Message: err.Error(), Err: err}
	}
	return obj, nil
}

// objectCopy returns a deep copy of raw in its generic JSON form, which must
// be an object.
func objectCopy(raw any) (map[string]any, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, &ValidationError{Message: "value is not representable as JSON", Err: err}
	}
	v, err := jsonvalue.Decode(data)
	if err != nil {
		return nil, &ValidationError{Message: "value is not representable as JSON", Err: err}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &ValidationError{Message: fmt.Sprintf("expected a JSON object, got %s", jsonKind(v))}
	}
	return obj, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, int64, uint64, json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Compile-time checks.
var (
	_ Validator = (*JSONSchema)(nil)
	_ Validator = Func(nil)
)
