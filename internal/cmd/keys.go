package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newKeysCmd creates the keys command.
func newKeysCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the keys in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			keys, err := app.Store.Keys()
			if err != nil {
				return err
			}

			if app.JSON {
				if keys == nil {
					keys = []string{}
				}
				return app.writeJSON(keys)
			}
			for _, key := range keys {
				fmt.Fprintln(app.Out, key)
			}
			return nil
		},
	}

	return cmd
}
