package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createDeleteCommand creates the delete command.
func createDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, store, err := newStoreFromCommand(cmd)
			if err != nil {
				return err
			}

			if err := store.Delete(ctx, args[0]); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted bookmark '%s'\n", args[0])
			return nil
		},
	}
}
