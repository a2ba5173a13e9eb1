package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRmCmd creates the rm command.
func newRmCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete the store file",
		Long: `Delete the store file. Succeeds if the file does not exist.

The next command recreates it from the defaults. The backup file, if any,
is left in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if err := app.Store.Rm(); err != nil {
				return err
			}

			if app.JSON {
				return app.writeJSON(map[string]string{
					"path":   app.Store.Path(),
					"status": "removed",
				})
			}
			fmt.Fprintf(app.Out, "Removed %s\n", app.Store.Path())
			return nil
		},
	}

	return cmd
}
