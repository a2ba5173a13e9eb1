package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newReadCmd creates the read command.
func newReadCmd(provider *AppProvider) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Print the whole store",
		Long: `Print the whole store as indented JSON, or as YAML with --yaml.

A missing file is created from the defaults. A corrupt file is backed up
and reset first, with a warning on stderr.

Examples:
  jsonstore read
  jsonstore read --yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			data, err := app.Store.Read()
			if err != nil {
				return err
			}

			if asYAML {
				out, err := yaml.Marshal(yamlValue(data))
				if err != nil {
					return fmt.Errorf("encoding yaml: %w", err)
				}
				_, err = app.Out.Write(out)
				return err
			}

			if app.JSON {
				return app.writeJSON(data)
			}

			out, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print as YAML")

	return cmd
}

// yamlValue replaces json.Number values, which yaml.v3 would quote as
// strings, with plain scalar nodes holding the same literal.
func yamlValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: t.String()}
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = yamlValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = yamlValue(e)
		}
		return out
	default:
		return v
	}
}
