// Package schema defines the validation contract the store depends on and
// provides JSON Schema backed implementations of it.
//
// A Validator takes an arbitrary decoded JSON value and either returns the
// parsed object or an error describing why the value does not conform:
//
//	v, err := schema.Loose().Validate(raw)
//
// Schemas can be inferred from Go types, which yields strict objects
// (unknown keys rejected) unless told otherwise:
//
//	type Settings struct {
//		Theme    string `json:"theme"`
//		FontSize int    `json:"fontSize,omitempty"`
//	}
//
//	strict, err := schema.For[Settings]()
//	open, err := schema.For[Settings](schema.AdditionalProperties(true))
//
// or loaded from a JSON Schema (draft 2020-12) document:
//
//	s, err := schema.Parse(data, schema.ApplyDefaults())
//
// Whether extra keys are accepted is a property of the schema, configured
// with AdditionalProperties, never of the store.
package schema
