package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/zeozeozeo/modtidy/pkg/mod"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Tidy.RemoveUnusedPatterns || !cfg.Tidy.RemoveUnusedSamples {
		t.Error("expected pruning to be enabled by default")
	}
	if !cfg.Tidy.OptimiseLooped || !cfg.Tidy.ZeroLeading {
		t.Error("expected loop optimisation and leading zeroing to be enabled by default")
	}
	if cfg.Tidy.TruncateToLoop {
		t.Error("expected truncate_to_loop to be disabled by default")
	}
	if cfg.Tidy.PadBlockSize != 0 {
		t.Errorf("expected padding to be disabled by default, got %d", cfg.Tidy.PadBlockSize)
	}
	if cfg.Jobs != 4 {
		t.Errorf("expected 4 jobs by default, got %d", cfg.Jobs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, used, err := Load(LoadOptions{SearchPaths: []string{t.TempDir()}})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if used != "" {
		t.Errorf("expected no config file, got %q", used)
	}
	if cfg.Jobs != DefaultConfig().Jobs || cfg.LogLevel != "info" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	content := `
tidy:
  truncate_to_loop: true
  pad_block_size: 16
output:
  suffix: "-tidy"
jobs: 2
log_level: debug
`
	path := filepath.Join(dir, "modtidy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, used, err := Load(LoadOptions{SearchPaths: []string{dir}})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if used != path {
		t.Errorf("expected %q to be used, got %q", path, used)
	}
	if !cfg.Tidy.TruncateToLoop || cfg.Tidy.PadBlockSize != 16 {
		t.Errorf("tidy settings not read: %+v", cfg.Tidy)
	}
	if !cfg.Tidy.RemoveUnusedPatterns {
		t.Error("unset keys must keep their defaults")
	}
	if cfg.Output.Suffix != "-tidy" || cfg.Jobs != 2 || cfg.Level() != log.DebugLevel {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MODTIDY_JOBS", "8")
	t.Setenv("MODTIDY_TIDY_ZERO_LEADING", "false")

	cfg, _, err := Load(LoadOptions{SearchPaths: []string{t.TempDir()}})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Jobs != 8 {
		t.Errorf("expected MODTIDY_JOBS to give 8 jobs, got %d", cfg.Jobs)
	}
	if cfg.Tidy.ZeroLeading {
		t.Error("expected MODTIDY_TIDY_ZERO_LEADING to disable zero_leading")
	}
}

func TestLoadExplicitFile(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, _, err := Load(LoadOptions{ConfigFilePath: filepath.Join(t.TempDir(), "nope.toml")})
		if err == nil {
			t.Fatal("expected an error for a missing explicit config file")
		}
	})

	t.Run("toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		if err := os.WriteFile(path, []byte("jobs = 3\n[output]\ndir = \"out\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, used, err := Load(LoadOptions{ConfigFilePath: path})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if used != path || cfg.Jobs != 3 || cfg.Output.Dir != "out" {
			t.Errorf("unexpected result %q %+v", used, cfg)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative pad", func(c *Config) { c.Tidy.PadBlockSize = -1 }},
		{"odd pad", func(c *Config) { c.Tidy.PadBlockSize = 7 }},
		{"pad past word limit", func(c *Config) { c.Tidy.PadBlockSize = mod.MaxSampleLength + 2 }},
		{"zero jobs", func(c *Config) { c.Jobs = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateEvenPad(t *testing.T) {
	for _, size := range []int{0, 2, 16, mod.MaxSampleLength} {
		cfg := DefaultConfig()
		cfg.Tidy.PadBlockSize = size
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() with pad %d error = %v", size, err)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output OutputConfig
		input  string
		want   string
	}{
		{"in place", OutputConfig{}, filepath.Join("songs", "a.mod"), filepath.Join("songs", "a.mod")},
		{"suffix", OutputConfig{Suffix: "-tidy"}, filepath.Join("songs", "a.mod"), filepath.Join("songs", "a-tidy.mod")},
		{"dir", OutputConfig{Dir: "out"}, filepath.Join("songs", "a.mod"), filepath.Join("out", "a.mod")},
		{"both", OutputConfig{Dir: "out", Suffix: ".small"}, "a.MOD", filepath.Join("out", "a.small.MOD")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Output = tt.output
			if got := cfg.OutputPath(tt.input); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
