package cmd

import (
	"encoding/json"
	"fmt"

	"jsonstore/internal/jsonvalue"
)

// parseValue interprets a command-line value as JSON, falling back to the
// literal string. "42" is a number, "true" a boolean, "hello" a string.
// Integers keep their exact value even beyond float64 precision.
func parseValue(s string) any {
	v, err := jsonvalue.Decode([]byte(s))
	if err != nil {
		return s
	}
	return v
}

// formatValue renders a stored value for text output. Strings are printed
// bare, everything else as compact JSON.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// keyValuePairs validates args of the form <key> <value> [<key> <value>...].
func keyValuePairs(args []string) (map[string]any, []string, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, nil, fmt.Errorf("expected <key> <value> pairs, got %d argument(s)", len(args))
	}
	values := make(map[string]any, len(args)/2)
	var keys []string
	for i := 0; i < len(args); i += 2 {
		key := args[i]
		if key == "" {
			return nil, nil, fmt.Errorf("empty key at position %d", i+1)
		}
		if _, dup := values[key]; !dup {
			keys = append(keys, key)
		}
		values[key] = parseValue(args[i+1])
	}
	return values, keys, nil
}
