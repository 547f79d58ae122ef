// Package config loads nextkit configuration: embedded defaults, the global
// config directory, the project's .nextkit.yaml and NEXTKIT_* environment
// overrides, in increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the global nextkit configuration directory. It holds
// config.yaml, merged under each project's .nextkit.yaml, and env, the
// fallback env file read after the project's .env.local and .env.
//
// Resolution:
//   - $NEXTKIT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/nextkit if set (respects XDG on any platform)
//   - %AppData%/nextkit on Windows
//   - ~/.config/nextkit on macOS and Linux
func Dir() string {
	if dir := os.Getenv("NEXTKIT_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nextkit")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "nextkit")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "nextkit")
}
