package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickmark/internal/bookmarks"
)

// setupTestEnv points the config, store and XDG data paths at a temp dir so
// command runs never touch the real home directory. Tests using it cannot be
// parallel because of t.Setenv.
func setupTestEnv(t *testing.T) (configPath, storePath string) {
	t.Helper()

	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	xdg.Reload()

	storePath = filepath.Join(tmp, "bookmarks.json")
	configPath = filepath.Join(tmp, "config.yml")
	content := fmt.Sprintf("store: %s\n", storePath)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath, storePath
}

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := createRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestAddListGoDeleteFlow(t *testing.T) {
	configPath, _ := setupTestEnv(t)
	target := t.TempDir()

	stdout, _, err := runCommand(t, "--config", configPath, "add", "proj", target)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Added bookmark 'proj' -> '%s'\n", target), stdout)

	stdout, _, err = runCommand(t, "--config", configPath, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Bookmarks:")
	assert.Contains(t, stdout, "proj -> "+target)

	stdout, _, err = runCommand(t, "--config", configPath, "go", "proj")
	require.NoError(t, err)
	assert.Equal(t, target+"\n", stdout)

	stdout, _, err = runCommand(t, "--config", configPath, "delete", "proj")
	require.NoError(t, err)
	assert.Equal(t, "Deleted bookmark 'proj'\n", stdout)

	stdout, _, err = runCommand(t, "--config", configPath, "list")
	require.NoError(t, err)
	assert.Equal(t, "No bookmarks found.\n", stdout)
}

func TestListAlignsNames(t *testing.T) {
	configPath, _ := setupTestEnv(t)
	target := t.TempDir()

	_, _, err := runCommand(t, "--config", configPath, "add", "a", target)
	require.NoError(t, err)
	_, _, err = runCommand(t, "--config", configPath, "add", "longname", target)
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "--config", configPath, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "  a        -> "+target)
	assert.Contains(t, stdout, "  longname -> "+target)
}

func TestAddDefaultsToCurrentDirectory(t *testing.T) {
	configPath, _ := setupTestEnv(t)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	stdout, _, err := runCommand(t, "--config", configPath, "add", "here")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Added bookmark 'here' -> '"+cwd+"'")
}

func TestAddMissingDirectoryFails(t *testing.T) {
	configPath, storePath := setupTestEnv(t)

	_, _, err := runCommand(t, "--config", configPath, "add", "proj", "/tmp/doesnotexist")
	require.ErrorIs(t, err, bookmarks.ErrInvalidDirectory)

	// Nothing was persisted.
	_, statErr := os.Stat(storePath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGoUnknownBookmarkFails(t *testing.T) {
	configPath, _ := setupTestEnv(t)

	stdout, _, err := runCommand(t, "--config", configPath, "go", "missing")
	require.ErrorIs(t, err, bookmarks.ErrNotFound)

	// The wrapper cds on non-empty stdout; a miss must print nothing there.
	assert.Empty(t, stdout)
}

func TestDeleteUnknownBookmarkFails(t *testing.T) {
	configPath, _ := setupTestEnv(t)

	_, _, err := runCommand(t, "--config", configPath, "delete", "missing")
	assert.ErrorIs(t, err, bookmarks.ErrNotFound)
}

func TestShellFunctionOutput(t *testing.T) {
	configPath, _ := setupTestEnv(t)

	stdout, _, err := runCommand(t, "--config", configPath, "shell-function")
	require.NoError(t, err)
	assert.Contains(t, stdout, "qm() {")
	assert.Contains(t, stdout, "Add the above function to your ~/.bashrc or ~/.zshrc file.")
}

func TestInvalidConfigFileFails(t *testing.T) {
	configPath, _ := setupTestEnv(t)
	require.NoError(t, os.WriteFile(configPath, []byte("store: [broken"), 0o600))

	_, _, err := runCommand(t, "--config", configPath, "list")
	assert.Error(t, err)
}
