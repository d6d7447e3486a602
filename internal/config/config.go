// Package config holds the islviz settings and their loader.
package config

import (
	"context"
	"os"
	"path/filepath"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DBPath is the SQLite event store.
	DBPath string `koanf:"db_path"`

	// MatchesDir holds one <match>.csv event log per match.
	MatchesDir string `koanf:"matches_dir"`

	// Encoding of the match files: latin-1 or utf-8.
	Encoding string `koanf:"encoding"`

	// PlotWidth is the SVG pitch width in pixels; height follows the pitch ratio.
	PlotWidth int `koanf:"plot_width"`
}

// New creates a Config populated with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:   "info",
		DBPath:     filepath.Join(userHome(), ".islviz", "events.db"),
		MatchesDir: "Matches",
		Encoding:   "latin-1",
		PlotWidth:  1050,
	}
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
