// Package config loads server configuration from an optional TOML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the full server configuration.
type Config struct {
	Server    Server    `toml:"server"`
	Highlight Highlight `toml:"highlight"`
	Log       Log       `toml:"log"`
}

// Server holds the HTTP listener settings.
type Server struct {
	Addr        string `toml:"addr"`
	MaxUploadMB int64  `toml:"max_upload_mb"`
}

// Highlight holds the annotation appearance settings. Color components
// are in the range [0, 1].
type Highlight struct {
	R       float64 `toml:"r"`
	G       float64 `toml:"g"`
	B       float64 `toml:"b"`
	Opacity float64 `toml:"opacity"`
}

// Log holds logging settings. Level is a logrus level name such as
// "info" or "debug".
type Log struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Server: Server{
			Addr:        ":8080",
			MaxUploadMB: 32,
		},
		Highlight: Highlight{
			R:       1,
			G:       1,
			B:       0,
			Opacity: 0.4,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load builds a Config by layering, in order: defaults, the TOML file at
// path (skipped when path is empty, an error when it names a missing or
// malformed file), and PSYCHMARK_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyEnv overrides individual settings from the environment.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("PSYCHMARK_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("PSYCHMARK_MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid PSYCHMARK_MAX_UPLOAD_MB %q: %w", v, err)
		}
		cfg.Server.MaxUploadMB = n
	}
	if v := os.Getenv("PSYCHMARK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PSYCHMARK_OPACITY"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid PSYCHMARK_OPACITY %q: %w", v, err)
		}
		cfg.Highlight.Opacity = f
	}
	return nil
}

// validate rejects configurations that would misbehave at runtime.
func (c Config) validate() error {
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be positive, got %d", c.Server.MaxUploadMB)
	}
	if c.Highlight.Opacity <= 0 || c.Highlight.Opacity > 1 {
		return fmt.Errorf("highlight opacity must be in (0, 1], got %g", c.Highlight.Opacity)
	}
	for _, comp := range []struct {
		name string
		val  float64
	}{{"r", c.Highlight.R}, {"g", c.Highlight.G}, {"b", c.Highlight.B}} {
		if comp.val < 0 || comp.val > 1 {
			return fmt.Errorf("highlight %s must be in [0, 1], got %g", comp.name, comp.val)
		}
	}
	return nil
}
