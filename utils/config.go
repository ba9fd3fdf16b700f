package utils

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/setanarut/kaleidoslice"
)

// Config holds CLI defaults read from a YAML file. Flags given on the
// command line take precedence.
type Config struct {
	// Slices is the column strip count (even, >= 2). 0 derives it from the input size.
	Slices int `yaml:"slices,omitempty"`
	// Workers is the number of strip pairs copied concurrently. 0 derives it.
	Workers int `yaml:"workers,omitempty"`
	// MaxSize caps the longest side of the input before mirroring. 0 disables.
	MaxSize int `yaml:"max_size,omitempty"`
	// Format overrides the output format (png, jpeg, gif, bmp, tiff).
	Format string `yaml:"format,omitempty"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{MaxSize: 2048, LogLevel: "info"}
}

// LoadConfig reads path over the defaults. An empty path or a missing
// file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Slices != 0 {
		if err := kaleidoslice.ValidateSliceCount(c.Slices); err != nil {
			return err
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("max_size must not be negative, got %d", c.MaxSize)
	}
	switch c.Format {
	case "", "png", "jpeg", "jpg", "gif", "bmp", "tiff":
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
