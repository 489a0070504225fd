// ABOUTME: Standard filesystem paths for splashfetch configuration and art
// ABOUTME: Resolves XDG config dir, local overrides, and the art search path

package config

import (
	"os"
	"path/filepath"
)

const appDirName = "splashfetch"

// GlobalDir returns the user-global config directory,
// $XDG_CONFIG_HOME/splashfetch or ~/.config/splashfetch.
func GlobalDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appDirName)
	}
	return filepath.Join(home, ".config", appDirName)
}

// GlobalConfigFile returns the path to the global settings file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "settings.json")
}

// LocalConfigFile returns the path to the per-directory override file.
func LocalConfigFile(dir string) string {
	return filepath.Join(dir, ".splashfetch.json")
}

// ArtDirs returns the art search path in resolution order: explicit
// env override, user config, system install, then the working
// directory as a last resort.
func ArtDirs() []string {
	var dirs []string
	if d := os.Getenv("SPLASHFETCH_ART_DIR"); d != "" {
		dirs = append(dirs, d)
	}
	dirs = append(dirs, filepath.Join(GlobalDir(), "art"))
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		dirs = append(dirs, filepath.Join(xdgData, appDirName, "art"))
	}
	dirs = append(dirs,
		filepath.Join("/usr/local/share", appDirName, "art"),
		filepath.Join("/usr/share", appDirName, "art"),
		".",
	)
	return dirs
}
