package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultOutputFormat = "text"
	DefaultPlotHeight   = 10
	DefaultWorkers      = 1
	DefaultFPS          = 8
)

// Environment variables that override file settings.
const (
	EnvLogLevel     = "ROVER_LOG_LEVEL"
	EnvLogFormat    = "ROVER_LOG_FORMAT"
	EnvOutputFormat = "ROVER_OUTPUT_FORMAT"
	EnvWorkers      = "ROVER_WORKERS"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

var (
	logFormats    = map[string]bool{"text": true, "json": true, "logfmt": true}
	outputFormats = map[string]bool{"text": true, "json": true, "csv": true, "svg": true}
	logLevels     = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
	Run    RunConfig    `yaml:"run"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Timestamps bool   `yaml:"timestamps"`
}

type OutputConfig struct {
	Format     string `yaml:"format"`
	Grid       bool   `yaml:"grid"`
	Plot       bool   `yaml:"plot"`
	PlotHeight int    `yaml:"plot_height"`
}

type RunConfig struct {
	Workers int `yaml:"workers"`
	FPS     int `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: OutputConfig{
			Format:     DefaultOutputFormat,
			PlotHeight: DefaultPlotHeight,
		},
		Run: RunConfig{
			Workers: DefaultWorkers,
			FPS:     DefaultFPS,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides settings from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := getenv(EnvOutputFormat); v != "" {
		c.Output.Format = v
	}
	if v := getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvWorkers, v)
		}
		c.Run.Workers = n
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if !logFormats[c.Log.Format] {
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if !outputFormats[c.Output.Format] {
		return fmt.Errorf("%w: output format %q", ErrInvalidConfig, c.Output.Format)
	}
	if c.Output.PlotHeight <= 0 {
		return fmt.Errorf("%w: plot height must be positive, got %d", ErrInvalidConfig, c.Output.PlotHeight)
	}
	if c.Run.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Run.Workers)
	}
	if c.Run.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.Run.FPS)
	}
	return nil
}
