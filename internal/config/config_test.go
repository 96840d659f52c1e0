package config

import (
	"errors"
	"strings"
	"testing"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.Kind != DefaultKind {
		t.Errorf("Kind = %q, want %q", cfg.Kind, DefaultKind)
	}
	if cfg.BatchSize != DefaultBatchSize {
		t.Errorf("BatchSize = %d, want %d", cfg.BatchSize, DefaultBatchSize)
	}
	if cfg.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", cfg.Workers, DefaultWorkers)
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
	if cfg.File == nil {
		t.Fatal("File should not be nil")
	}
	if !cfg.File.Text.TrimWhitespace {
		t.Error("File.Text.TrimWhitespace should default to true")
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) { c.Inputs = []string{"hello"} },
			wantErr: nil,
		},
		{
			name:    "no input",
			mutate:  func(c *Config) {},
			wantErr: ErrNoInput,
		},
		{
			name: "zero batch size",
			mutate: func(c *Config) {
				c.Inputs = []string{"hello"}
				c.BatchSize = 0
			},
			wantErr: ErrInvalidBatchSize,
		},
		{
			name: "negative batch size",
			mutate: func(c *Config) {
				c.Inputs = []string{"hello"}
				c.BatchSize = -1
			},
			wantErr: ErrInvalidBatchSize,
		},
		{
			name: "negative workers",
			mutate: func(c *Config) {
				c.Inputs = []string{"hello"}
				c.Workers = -2
			},
			wantErr: ErrInvalidWorkers,
		},
		{
			name: "zero workers is valid",
			mutate: func(c *Config) {
				c.Inputs = []string{"hello"}
				c.Workers = 0
			},
			wantErr: nil,
		},
		{
			name: "conflicting report formats",
			mutate: func(c *Config) {
				c.Inputs = []string{"hello"}
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name: "json report alone is valid",
			mutate: func(c *Config) {
				c.Inputs = []string{"hello"}
				c.JSONReport = true
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestXDGDirs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func() string
	}{
		{name: "data", fn: XDGDataDir},
		{name: "config", fn: XDGConfigDir},
		{name: "cache", fn: XDGCacheDir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := tt.fn()
			if dir == "" {
				t.Error("directory should not be empty")
			}
			if !strings.HasSuffix(dir, AppName) {
				t.Errorf("directory %q should end with %q", dir, AppName)
			}
		})
	}
}
