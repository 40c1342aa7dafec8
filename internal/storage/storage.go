// Package storage provides storage path management for quickmark.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const (
	// AppName is the application name used for XDG directory paths
	AppName = "quickmark"

	// StoreFilename is the bookmark store file kept directly under the home
	// directory, matching where users of the original tool expect it.
	StoreFilename = ".quickmark_bookmarks.json"

	logFilename    = "quickmark.log"
	configFilename = "config.yml"
)

// Manager handles storage path operations with filesystem abstraction
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetDataDir returns the XDG data directory for quickmark, creating it if necessary
func (m *Manager) GetDataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	err := m.fs.MkdirAll(dataDir, 0o750)
	if err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// GetLogPath returns the full path to the quickmark log file
func (m *Manager) GetLogPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, logFilename), nil
}

// DefaultStorePath returns the default bookmark store file location.
func (m *Manager) DefaultStorePath() string {
	return filepath.Join(xdg.Home, StoreFilename)
}

// DefaultConfigPath returns the default config file location.
func (m *Manager) DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, configFilename)
}
