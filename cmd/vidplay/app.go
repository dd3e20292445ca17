package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmunix/vidplay/internal/catalog"
	"github.com/vmunix/vidplay/internal/config"
	"github.com/vmunix/vidplay/internal/migrations"
	_ "modernc.org/sqlite"
)

// memoryDB is the SQLite path for a database that lives only as long as
// the process.
const memoryDB = ":memory:"

// loadConfig resolves configuration from --config, then the discovery
// path, then built-in defaults. Command-line flags override file values.
func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		switch {
		case err == nil:
			path = found
		case errors.Is(err, config.ErrNotFound):
			// Defaults only.
		default:
			return nil, "", err
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, path, fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}

	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if logLevel != "" {
		cfg.Log.Level = strings.ToLower(logLevel)
	}
	return cfg, path, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger builds the process logger. Logs go to cfg.Log.File when set,
// otherwise to stderr, so they never mix with session output.
func newLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	w, closeFn := stderr, func() error { return nil }
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	return logger, closeFn, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(cfg.Catalog.Path)
}

// openHistory opens the event database and applies migrations.
func openHistory(path string) (*sql.DB, error) {
	if path != memoryDB {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// newRand returns a generator for PLAY_RANDOM: fixed for a non-zero seed,
// nil (randomly seeded by the player) otherwise.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
