package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newResetCmd creates the reset command.
func newResetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the store with its defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			data, err := app.Store.Reset()
			if err != nil {
				return err
			}

			if app.JSON {
				return app.writeJSON(data)
			}
			fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("✓ Reset to defaults:"), app.Store.Path())
			return nil
		},
	}

	return cmd
}
