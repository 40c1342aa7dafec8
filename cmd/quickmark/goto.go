package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createGoCommand creates the go command. The shell wrapper consumes its
// stdout as the directory to change into, so nothing but the resolved path
// may be printed there.
func createGoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "go <name>",
		Short: "Print the path of a bookmark for the shell wrapper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, store, err := newStoreFromCommand(cmd)
			if err != nil {
				return err
			}

			path, err := store.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
