package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// createListCommand creates the list command.
func createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, store, err := newStoreFromCommand(cmd)
			if err != nil {
				return err
			}

			entries := store.List(ctx)
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No bookmarks found.")
				return nil
			}

			_, _ = color.New(color.Bold).Fprintln(cmd.OutOrStdout(), "Bookmarks:")

			maxNameLen := 0
			for _, entry := range entries {
				if len(entry.Name) > maxNameLen {
					maxNameLen = len(entry.Name)
				}
			}
			for _, entry := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %-*s -> %s\n", maxNameLen, entry.Name, entry.Path)
			}
			return nil
		},
	}
}
