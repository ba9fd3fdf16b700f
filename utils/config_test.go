package utils

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/setanarut/kaleidoslice"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig(%q): %v", path, err)
		}
		if *cfg != *DefaultConfig() {
			t.Errorf("LoadConfig(%q) = %+v, want defaults", path, cfg)
		}
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, "slices: 12\nworkers: 4\nmax_size: 512\nformat: jpeg\nlog_level: debug\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Slices: 12, Workers: 4, MaxSize: 512, Format: "jpeg", LogLevel: "debug"}
	if *cfg != want {
		t.Errorf("cfg = %+v, want %+v", *cfg, want)
	}
}

func TestLoadConfig_KeepsUnsetDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "slices: 8\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxSize != 2048 || cfg.LogLevel != "info" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"odd slices", "slices: 7\n"},
		{"one slice", "slices: 1\n"},
		{"negative workers", "workers: -1\n"},
		{"negative max size", "max_size: -5\n"},
		{"format", "format: xcf\n"},
		{"log level", "log_level: loud\n"},
		{"syntax", "slices: [1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigValidate_SliceError(t *testing.T) {
	err := (&Config{Slices: 3}).Validate()
	if !errors.Is(err, kaleidoslice.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}
