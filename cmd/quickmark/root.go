package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"quickmark/internal/bookmarks"
	"quickmark/internal/config"
	"quickmark/internal/logging"
	"quickmark/internal/storage"
)

// createRootCommand creates the main root command that shows help by default.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quickmark",
		Short: "Bookmark directories and jump to them",
		// The qm wrapper decides whether to cd based on exit code and
		// stdout alone; keep failures to the one-line error message.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file")

	rootCmd.AddCommand(
		createAddCommand(),
		createDeleteCommand(),
		createListCommand(),
		createGoCommand(),
		createShellFunctionCommand(),
		createInstallCommand(),
	)

	return rootCmd
}

// newStoreFromCommand resolves config and logging once and builds the store
// for a subcommand invocation.
func newStoreFromCommand(cmd *cobra.Command) (context.Context, *bookmarks.Store, error) {
	fs := afero.NewOsFs()
	paths := storage.New(fs)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath == "" {
		configPath = paths.DefaultConfigPath()
	}

	cfg, err := config.Load(fs, configPath)
	if err != nil {
		return nil, nil, err
	}

	ctx, err := logging.New(cmd.Context(), fs, logging.Config{
		Level:      cfg.LogLevel(),
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
	})
	if err != nil {
		// An unwritable log destination must not block bookmark operations.
		ctx = cmd.Context()
	}

	storePath := cfg.Store
	switch {
	case storePath == "":
		storePath = paths.DefaultStorePath()
	case strings.HasPrefix(storePath, "~/"):
		storePath = filepath.Join(xdg.Home, storePath[2:])
	}

	return ctx, bookmarks.New(fs, storePath, xdg.Home), nil
}

// commandName is how the shell wrapper and install instructions refer to
// this binary, mirroring however it was invoked.
func commandName() string {
	return filepath.Base(os.Args[0])
}
