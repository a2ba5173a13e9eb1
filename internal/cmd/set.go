package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newSetCmd creates the set command.
func newSetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value> [<key> <value>...]",
		Short: "Set one or more values",
		Long: `Set one or more top-level keys.

Values are parsed as JSON when possible (numbers, booleans, null, arrays
and objects), otherwise stored as strings. Several pairs are written in a
single update: if the result fails schema validation nothing is written.

Examples:
  jsonstore set theme dark
  jsonstore set fontSize 14 lineNumbers true
  jsonstore set window '{"width": 800, "height": 600}'`,
		Args: func(cmd *cobra.Command, args []string) error {
			_, _, err := keyValuePairs(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			values, keys, err := keyValuePairs(args)
			if err != nil {
				return err
			}

			if len(keys) == 1 {
				err = app.Store.Set(keys[0], values[keys[0]])
			} else {
				err = app.Store.SetAll(values)
			}
			if err != nil {
				return err
			}

			if app.JSON {
				return app.writeJSON(map[string]any{
					"set": values,
				})
			}
			for _, key := range keys {
				fmt.Fprintf(app.Out, "%s %s = %s\n", app.SuccessColor("✓ Set"), key, formatValue(values[key]))
			}
			return nil
		},
	}

	return cmd
}
