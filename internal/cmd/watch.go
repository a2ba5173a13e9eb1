package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newWatchCmd creates the watch command.
func newWatchCmd(provider *AppProvider) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the store whenever the file changes",
		Long: `Watch the store file and print its content after every change,
until interrupted.

Changes made by other jsonstore commands, other programs or by hand are all
reported. Each change is printed as one line of JSON, or "removed" when the
file is deleted.

Examples:
  jsonstore watch
  jsonstore watch --count 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			changes, err := app.Store.Watch(cmd.Context())
			if err != nil {
				return err
			}

			seen := 0
			for change := range changes {
				if app.JSON {
					if err := app.writeJSON(map[string]any{
						"removed": change.Removed,
						"value":   change.Value,
					}); err != nil {
						return err
					}
				} else if change.Removed {
					fmt.Fprintln(app.Out, app.WarnColor("removed"))
				} else {
					data, err := json.Marshal(change.Value)
					if err != nil {
						return err
					}
					fmt.Fprintln(app.Out, string(data))
				}

				seen++
				if count > 0 && seen >= count {
					return nil
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Exit after this many changes (0 = until interrupted)")

	return cmd
}
