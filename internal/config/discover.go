package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates no config file exists in any searched location.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./vidplay.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vidplay", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. VIDPLAY_CONFIG environment variable
//  2. ./vidplay.toml (current directory)
//  3. $XDG_CONFIG_HOME/vidplay/config.toml
//  4. /etc/vidplay/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("VIDPLAY_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("VIDPLAY_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./vidplay.toml",
		DefaultPath(),
		"/etc/vidplay/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}
