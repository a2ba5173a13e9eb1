package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// newDeleteCmd creates the delete command.
func newDeleteCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <key> [key...]",
		Short: "Remove one or more keys",
		Long: `Remove one or more top-level keys.

Keys that are not set are ignored. The file is only rewritten when at
least one key was removed.

Examples:
  jsonstore delete theme
  jsonstore delete theme fontSize`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			deleted, err := app.Store.DeleteKeys(args...)
			if err != nil {
				return err
			}

			var missing []string
			for _, key := range args {
				if !slices.Contains(deleted, key) && !slices.Contains(missing, key) {
					missing = append(missing, key)
				}
			}
			found := len(missing) == 0

			if app.JSON {
				result := map[string]any{
					"deleted": deleted,
					"found":   found,
				}
				if len(missing) > 0 {
					result["missing"] = missing
				}
				return app.writeJSON(result)
			}

			for _, key := range deleted {
				fmt.Fprintf(app.Out, "Deleted %s\n", key)
			}
			if len(missing) > 0 {
				fmt.Fprintln(app.Out, app.WarnColor("Not set: "+strings.Join(missing, ", ")))
			}
			return nil
		},
	}

	return cmd
}
