// Package config loads matmul CLI settings from defaults, a YAML file and
// MATMUL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/matmul/multiply"
)

// Config represents the application configuration
type Config struct {
	Multiply MultiplyConfig `mapstructure:"multiply"`
	Generate GenerateConfig `mapstructure:"generate"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type MultiplyConfig struct {
	Kind    string `mapstructure:"kind"`
	Workers int    `mapstructure:"workers"`
}

// GenerateConfig describes the random operands: left is Rows×Inner, right is Inner×Cols.
type GenerateConfig struct {
	Seed  uint64 `mapstructure:"seed"`
	Rows  int    `mapstructure:"rows"`
	Inner int    `mapstructure:"inner"`
	Cols  int    `mapstructure:"cols"`
	Min   int64  `mapstructure:"min"`
	Max   int64  `mapstructure:"max"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Multiply: MultiplyConfig{
			Kind:    "parallel",
			Workers: 0,
		},
		Generate: GenerateConfig{
			Seed:  125684356,
			Rows:  256,
			Inner: 256,
			Cols:  256,
			Min:   math.MinInt32,
			Max:   math.MaxInt32,
		},
		Logging: LoggingConfig{
			Level:   "info",
			File:    "",
			Console: true,
		},
	}
}

// Load loads configuration from file, environment, and defaults
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".matmul"))
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("matmul")
	}

	v.SetEnvPrefix("MATMUL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is okay, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Logging.File = expandPath(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := multiply.ParseKind(c.Multiply.Kind); err != nil {
		return fmt.Errorf("multiply.kind: %w", err)
	}

	if c.Generate.Rows <= 0 || c.Generate.Inner <= 0 || c.Generate.Cols <= 0 {
		return errors.New("generate.rows, generate.inner and generate.cols must be > 0")
	}

	if c.Generate.Min < math.MinInt32 || c.Generate.Max > math.MaxInt32 {
		return errors.New("generate.min and generate.max must fit in int32")
	}
	if c.Generate.Min > c.Generate.Max {
		return errors.New("generate.min must not exceed generate.max")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}

	return nil
}

// Kind returns the parsed multiplier kind. Call after Validate.
func (c *Config) Kind() multiply.Kind {
	k, _ := multiply.ParseKind(c.Multiply.Kind)
	return k
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("multiply.kind", cfg.Multiply.Kind)
	v.SetDefault("multiply.workers", cfg.Multiply.Workers)

	v.SetDefault("generate.seed", cfg.Generate.Seed)
	v.SetDefault("generate.rows", cfg.Generate.Rows)
	v.SetDefault("generate.inner", cfg.Generate.Inner)
	v.SetDefault("generate.cols", cfg.Generate.Cols)
	v.SetDefault("generate.min", cfg.Generate.Min)
	v.SetDefault("generate.max", cfg.Generate.Max)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.console", cfg.Logging.Console)
}
