package config

import (
	"fmt"
	"os"

	"jsonstore/schema"
)

// LoadSchema builds the validator described by c. Without a schema file
// any object is accepted.
func (c Config) LoadSchema() (schema.Validator, error) {
	if c.SchemaFile == "" {
		if c.Strict {
			return nil, fmt.Errorf("--strict requires a schema file")
		}
		return schema.Loose(), nil
	}

	data, err := os.ReadFile(c.SchemaFile)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}

	var opts []schema.Option
	if c.Strict {
		opts = append(opts, schema.AdditionalProperties(false))
	}
	s, err := schema.Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading schema %s: %w", c.SchemaFile, err)
	}
	return s, nil
}
