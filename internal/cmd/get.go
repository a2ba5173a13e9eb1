package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newGetCmd creates the get command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key> [key...]",
		Short: "Get one or more values",
		Long: `Get the value of one or more top-level keys.

With a single key, prints the bare value if the key is set, or
"key (not set)" if missing. With several keys, prints "key = value"
per key.

Examples:
  jsonstore get theme
  jsonstore get theme fontSize`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				key := args[0]
				value, ok, err := app.Store.Get(key)
				if err != nil {
					return err
				}
				if app.JSON {
					return app.writeJSON(map[string]any{
						"key":   key,
						"value": value,
						"found": ok,
					})
				}
				if ok {
					fmt.Fprintln(app.Out, formatValue(value))
				} else {
					fmt.Fprintf(app.Out, "%s (not set)\n", key)
				}
				return nil
			}

			values, err := app.Store.GetMany(args...)
			if err != nil {
				return err
			}
			if app.JSON {
				return app.writeJSON(values)
			}
			for _, key := range args {
				if value, ok := values[key]; ok {
					fmt.Fprintf(app.Out, "%s = %s\n", key, formatValue(value))
				} else {
					fmt.Fprintf(app.Out, "%s (not set)\n", key)
				}
			}
			return nil
		},
	}

	return cmd
}
