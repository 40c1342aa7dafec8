package main

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"quickmark/internal/prompt"
	"quickmark/internal/shell"
)

// createInstallCommand creates the install command.
func createInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the qm shell function into your shell config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			installer := shell.NewInstaller(afero.NewOsFs(), xdg.Home, os.Getenv("SHELL"))

			yes, err := cmd.Flags().GetBool("yes")
			if err != nil {
				return fmt.Errorf("failed to get yes flag: %w", err)
			}
			if !yes {
				p := prompt.NewLinerPrompter()
				defer func() { _ = p.Close() }()

				ok, confirmErr := prompt.Confirm(p,
					fmt.Sprintf("Install the qm shell function into %s?", installer.ConfigFile()))
				if confirmErr != nil {
					return confirmErr
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Install cancelled.")
					return nil
				}
			}

			configFile, already, err := installer.Install(commandName())
			if err != nil {
				// Leave the user a manual path when the config file is unwritable.
				_, _ = fmt.Fprintln(cmd.OutOrStdout(),
					"You can manually add the following to your shell config file:")
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), shell.Function(commandName()))
				return err
			}

			if already {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Shell function already installed in %s\n", configFile)
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Shell function installed in %s\n", configFile)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(),
				"Please restart your shell or run 'source %s' to activate it.\n", configFile)
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
