package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"jsonstore/internal/jsonvalue"
)

// LoadDefaults reads a defaults object from path. The format is chosen by
// extension: .json, .yaml, .yml or .toml.
func LoadDefaults(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults: %w", err)
	}

	out := make(map[string]any)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		out, err = decodeJSONObject(data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &out)
	case ".toml":
		err = toml.Unmarshal(data, &out)
	default:
		return nil, fmt.Errorf("unsupported defaults format %q (want .json, .yaml, .yml or .toml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing defaults %s: %w", path, err)
	}
	if out == nil {
		out = make(map[string]any)
	}
	return out, nil
}

// decodeJSONObject decodes data without rounding large integers. null is
// treated as an empty object.
func decodeJSONObject(data []byte) (map[string]any, error) {
	v, err := jsonvalue.Decode(data)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return t, nil
	default:
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
}
