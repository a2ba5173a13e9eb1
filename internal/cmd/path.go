package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPathCmd creates the path command.
func newPathCmd(provider *AppProvider) *cobra.Command {
	var backup bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the location of the store file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if app.JSON {
				return app.writeJSON(map[string]string{
					"path":   app.Store.Path(),
					"backup": app.Store.BackupPath(),
				})
			}

			if backup {
				fmt.Fprintln(app.Out, app.Store.BackupPath())
			} else {
				fmt.Fprintln(app.Out, app.Store.Path())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&backup, "backup", false, "Print the backup file location instead")

	return cmd
}
