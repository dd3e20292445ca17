// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Log     LogConfig     `toml:"log"`
	History HistoryConfig `toml:"history"`
	Player  PlayerConfig  `toml:"player"`
	REPL    REPLConfig    `toml:"repl"`
}

type CatalogConfig struct {
	Path string `toml:"path"` // empty for the built-in catalog
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // empty for stderr
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"` // SQLite database; ":memory:" keeps nothing after exit
}

type PlayerConfig struct {
	Seed int64 `toml:"seed"` // PLAY_RANDOM seed; 0 picks one at startup
}

type REPLConfig struct {
	Prompt  string `toml:"prompt"`
	Welcome bool   `toml:"welcome"`
	Suggest bool   `toml:"suggest"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "warn",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    ":memory:",
		},
		REPL: REPLConfig{
			Prompt:  "> ",
			Welcome: true,
			Suggest: true,
		},
	}
}

// Load reads, parses, and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file. Keys the
// file leaves out keep their Default values.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	cfg := Default()
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}

	return cfg, nil
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment references outside comments.
// Unset variables without a default are left in place and reported in
// missing; a :? reference reports "VAR: message". Empty values count as
// unset for the :- and :? forms.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	expand := func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]

		value, ok := os.LookupEnv(name)
		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		cut := commentStart(line)
		lines[i] = envVarPattern.ReplaceAllStringFunc(line[:cut], expand) + line[cut:]
	}
	return strings.Join(lines, "\n"), missing
}

// commentStart returns the index of the first # outside a quoted string,
// or len(line) if the line has no comment.
func commentStart(line string) int {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote == '"' && c == '\\':
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return i
		}
	}
	return len(line)
}
