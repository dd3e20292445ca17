package config

import (
	"fmt"
	"os"
	"path/filepath"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Log.File != "" {
		if _, err := os.Stat(filepath.Dir(c.Log.File)); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("log.file: directory %q does not exist", filepath.Dir(c.Log.File)))
		}
	}

	if c.Catalog.Path != "" {
		info, err := os.Stat(c.Catalog.Path)
		switch {
		case os.IsNotExist(err):
			errs = append(errs, fmt.Sprintf("catalog.path: file %q does not exist", c.Catalog.Path))
		case err == nil && info.IsDir():
			errs = append(errs, fmt.Sprintf("catalog.path: %q is a directory", c.Catalog.Path))
		}
	}

	if c.History.Enabled && c.History.Path == "" {
		errs = append(errs, "history.path: required when history is enabled")
	}

	return errs
}
