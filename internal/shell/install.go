package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Installer appends the qm wrapper to the user's shell config file.
type Installer struct {
	fs    afero.Fs
	home  string
	shell string
}

// NewInstaller creates an installer. shell is the value of $SHELL and picks
// which config file receives the function.
func NewInstaller(fs afero.Fs, home, shell string) *Installer {
	return &Installer{fs: fs, home: home, shell: shell}
}

// ConfigFile returns the shell config file the wrapper goes into: ~/.zshrc
// for zsh users, ~/.bashrc otherwise.
func (i *Installer) ConfigFile() string {
	if strings.Contains(i.shell, "zsh") {
		return filepath.Join(i.home, ".zshrc")
	}
	return filepath.Join(i.home, ".bashrc")
}

// Install appends the wrapper for command to the shell config file. Returns
// the config file path and whether the wrapper was already present, in which
// case the file is left untouched.
func (i *Installer) Install(command string) (configFile string, alreadyInstalled bool, err error) {
	configFile = i.ConfigFile()

	data, err := afero.ReadFile(i.fs, configFile)
	if err != nil && !os.IsNotExist(err) {
		return configFile, false, fmt.Errorf("failed to read shell config %s: %w", configFile, err)
	}
	if strings.Contains(string(data), Marker) {
		return configFile, true, nil
	}

	f, err := i.fs.OpenFile(configFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return configFile, false, fmt.Errorf("failed to open shell config %s: %w", configFile, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString("\n" + Function(command)); err != nil {
		return configFile, false, fmt.Errorf("failed to write shell config %s: %w", configFile, err)
	}
	return configFile, false, nil
}
