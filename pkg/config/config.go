// Package config handles modtidy configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/zeozeozeo/modtidy/pkg/mod"
)

const (
	// AppName is the application name.
	AppName = "modtidy"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "modtidy"
	// EnvPrefix prefixes every environment override, MODTIDY_JOBS for example.
	EnvPrefix = "MODTIDY"
)

var (
	// ErrInvalidConfig is the sentinel error wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config is the full modtidy configuration
type Config struct {
	Tidy     TidyConfig   `mapstructure:"tidy"`
	Output   OutputConfig `mapstructure:"output"`
	Jobs     int          `mapstructure:"jobs"`
	LogLevel string       `mapstructure:"log_level"`
}

// TidyConfig selects the transforms applied by `modtidy tidy`
type TidyConfig struct {
	RemoveUnusedPatterns bool `mapstructure:"remove_unused_patterns"`
	RemoveUnusedSamples  bool `mapstructure:"remove_unused_samples"`
	OptimiseLooped       bool `mapstructure:"optimise_looped"`
	TruncateToLoop       bool `mapstructure:"truncate_to_loop"`
	ZeroLeading          bool `mapstructure:"zero_leading"`
	// PadBlockSize pads every sample to a multiple of this many bytes, 0 disables padding
	PadBlockSize int `mapstructure:"pad_block_size"`
}

// OutputConfig tells tidy where to write results. With both fields empty
// the input file is overwritten.
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Suffix string `mapstructure:"suffix"`
}

// LoadOptions overrides where configuration is read from
type LoadOptions struct {
	// ConfigFilePath is used exclusively when set
	ConfigFilePath string
	// SearchPaths replaces the default search directories
	SearchPaths []string
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Tidy: TidyConfig{
			RemoveUnusedPatterns: true,
			RemoveUnusedSamples:  true,
			OptimiseLooped:       true,
			TruncateToLoop:       false,
			ZeroLeading:          true,
			PadBlockSize:         0,
		},
		Jobs:     4,
		LogLevel: "info",
	}
}

// ConfigDir returns $XDG_CONFIG_HOME/modtidy, defaulting to ~/.config/modtidy
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, AppName), nil
}

// Load reads defaults, then the first config file found, then MODTIDY_*
// environment variables. A missing config file is not an error. It also
// returns the path of the file that was used, empty if none.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("tidy.remove_unused_patterns", defaults.Tidy.RemoveUnusedPatterns)
	v.SetDefault("tidy.remove_unused_samples", defaults.Tidy.RemoveUnusedSamples)
	v.SetDefault("tidy.optimise_looped", defaults.Tidy.OptimiseLooped)
	v.SetDefault("tidy.truncate_to_loop", defaults.Tidy.TruncateToLoop)
	v.SetDefault("tidy.zero_leading", defaults.Tidy.ZeroLeading)
	v.SetDefault("tidy.pad_block_size", defaults.Tidy.PadBlockSize)
	v.SetDefault("output.dir", defaults.Output.Dir)
	v.SetDefault("output.suffix", defaults.Output.Suffix)
	v.SetDefault("jobs", defaults.Jobs)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("load configuration %s: %w", opts.ConfigFilePath, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		searchPaths := opts.SearchPaths
		if searchPaths == nil {
			searchPaths = []string{"."}
			if dir, err := ConfigDir(); err == nil {
				searchPaths = append(searchPaths, dir)
			}
		}
		for _, path := range searchPaths {
			v.AddConfigPath(path)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("load configuration: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, v.ConfigFileUsed(), nil
}

// Validate checks value ranges viper cannot express
func (c *Config) Validate() error {
	if c.Tidy.PadBlockSize < 0 {
		return fmt.Errorf("%w: tidy.pad_block_size must not be negative, got %d", ErrInvalidConfig, c.Tidy.PadBlockSize)
	}
	// sample lengths are stored as word counts
	if c.Tidy.PadBlockSize%2 != 0 {
		return fmt.Errorf("%w: tidy.pad_block_size must be even, got %d", ErrInvalidConfig, c.Tidy.PadBlockSize)
	}
	if c.Tidy.PadBlockSize > mod.MaxSampleLength {
		return fmt.Errorf("%w: tidy.pad_block_size must be at most %d, got %d", ErrInvalidConfig, mod.MaxSampleLength, c.Tidy.PadBlockSize)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalidConfig, c.Jobs)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q: %v", ErrInvalidConfig, c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, info when it cannot be parsed
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// OutputPath returns where tidy writes the result for input
func (c *Config) OutputPath(input string) string {
	dir, name := filepath.Split(input)
	if c.Output.Suffix != "" {
		ext := filepath.Ext(name)
		name = strings.TrimSuffix(name, ext) + c.Output.Suffix + ext
	}
	if c.Output.Dir != "" {
		dir = c.Output.Dir
	}
	return filepath.Join(dir, name)
}
