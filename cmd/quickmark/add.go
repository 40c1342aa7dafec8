package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// createAddCommand creates the add command.
func createAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> [path]",
		Short: "Add a bookmark",
		Long:  "Add a bookmark for a directory. Defaults to the current directory.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, store, err := newStoreFromCommand(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			var path string
			if len(args) > 1 {
				path = args[1]
			} else {
				path, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get current directory: %w", err)
				}
			}

			stored, err := store.Add(ctx, name, path)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added bookmark '%s' -> '%s'\n", name, stored)
			return nil
		},
	}
}
