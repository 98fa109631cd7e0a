package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile overrides the location of the user config file
	EnvConfigFile = "EZLINK_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for ezlink-specific files
	AppDirName = "ezlink"

	// ConfigFileName is the name of the user config file
	ConfigFileName = "config.toml"
)

// ConfigFile returns the path of the user config file. EZLINK_CONFIG wins
// over $XDG_CONFIG_HOME/ezlink/config.toml.
func ConfigFile() string {
	if override := os.Getenv(EnvConfigFile); override != "" {
		return ExpandHome(override)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			// Can't expand, return as-is
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
