package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newHasCmd creates the has command.
func newHasCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "has <key> [key...]",
		Short: "Report whether keys are present",
		Long: `Print "true" if every key is present in the store, otherwise "false".

Examples:
  jsonstore has theme
  jsonstore has theme fontSize`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			ok, err := app.Store.Has(args...)
			if err != nil {
				return err
			}

			if app.JSON {
				return app.writeJSON(map[string]any{
					"keys": args,
					"has":  ok,
				})
			}
			fmt.Fprintln(app.Out, ok)
			return nil
		},
	}

	return cmd
}
