package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quickmark/internal/shell"
)

// createShellFunctionCommand creates the shell-function command.
func createShellFunctionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell-function",
		Short: "Print the qm shell function",
		Long:  "Print the qm shell function to add to your shell config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), shell.Function(commandName()))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(),
				"Add the above function to your ~/.bashrc or ~/.zshrc file.")
			return nil
		},
	}
}
