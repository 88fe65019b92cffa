// Package config assembles the runtime configuration of the journal CLI
// from defaults, an optional JSON file, environment variables, and
// command-line flags, in that order of precedence.
package config

import "log/slog"

// Config holds runtime settings for the journal CLI.
//
// Fields:
//   - DatabaseDSN: sqlite DSN of the local data file.
//   - ExportDir: directory backup files are written to by default.
//   - LogLevel: minimum level for diagnostic output (debug, info, warn, error).
type Config struct {
	DatabaseDSN string `env:"DATABASE_DSN"`
	ExportDir   string `env:"EXPORT_DIR"`
	LogLevel    string `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "365-journal.db"
	c.ExportDir = "."
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}

// SlogLevel maps the configured level name onto a slog level. Unknown names
// fall back to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
