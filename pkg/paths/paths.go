// Package paths provides centralized path handling for sceneryctl.
// It follows the XDG Base Directory specification and keeps every
// path decision in one place.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for sceneryctl
	EnvConfigDir = "SCENERYCTL_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for sceneryctl
	EnvStateDir = "SCENERYCTL_STATE_DIR"
)

const (
	appDirName = "sceneryctl"

	// ConfigFileName is the user configuration file name
	ConfigFileName = "config.toml"

	// ThemeFileName is the optional output theme override file
	ThemeFileName = "theme.yaml"

	logFileName = "sceneryctl.log"
)

// ConfigDir returns the directory holding user configuration.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, appDirName)
}

// StateDir returns the directory holding logs and other mutable state.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, appDirName)
}

// ConfigFile returns the full path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// ThemeFile returns the full path of the optional theme override file.
func ThemeFile() string {
	return filepath.Join(ConfigDir(), ThemeFileName)
}

// LogFile returns the full path of the append-mode log file.
func LogFile() string {
	return filepath.Join(StateDir(), logFileName)
}
