// Package config loads the YAML configuration of the deepcopy CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"deepcopier/diagnostic"
	"deepcopier/options"
	"deepcopier/utils"
)

const (
	DefaultLevel   = "info"
	DefaultFormat  = "auto"
	DefaultWorkers = 4

	MaxWorkers  = 256
	MaxMaxDepth = 1 << 20
)

// Config is the root of a configuration file.
type Config struct {
	Logging Logging `yaml:"logging"`
	Copy    Copy    `yaml:"copy"`
	Runner  Runner  `yaml:"runner"`
}

// Logging selects the logger level and encoder.
type Logging struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // auto, json, console
}

// Copy toggles copier features. Unset switches default to on.
type Copy struct {
	Unexported        *bool `yaml:"unexported,omitempty"`
	Initializers      *bool `yaml:"initializers,omitempty"`
	ContainerFallback *bool `yaml:"container_fallback,omitempty"`
	InteriorPointers  *bool `yaml:"interior_pointers,omitempty"`
	MaxDepth          int   `yaml:"max_depth,omitempty"`
}

// Runner sizes the worker pool.
type Runner struct {
	Workers int `yaml:"workers,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLevel
	}

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultFormat
	}

	if cfg.Runner.Workers == 0 {
		cfg.Runner.Workers = DefaultWorkers
	}
}

// Validate checks value ranges and enumerations.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		res.AddError("invalid_level", fmt.Sprintf("unknown log level %q", cfg.Logging.Level), "", "logging.level")
	}

	switch cfg.Logging.Format {
	case "auto", "json", "console":
	default:
		res.AddError("invalid_format", fmt.Sprintf("unknown log format %q", cfg.Logging.Format), "", "logging.format")
	}

	if !utils.IsInRange(1, cfg.Runner.Workers, MaxWorkers) {
		res.AddError("invalid_workers",
			fmt.Sprintf("workers must be within [1, %d], got %d", MaxWorkers, cfg.Runner.Workers), "", "runner.workers")
	}

	if !utils.IsInRange(0, cfg.Copy.MaxDepth, MaxMaxDepth) {
		res.AddError("invalid_max_depth",
			fmt.Sprintf("max_depth must be within [0, %d], got %d", MaxMaxDepth, cfg.Copy.MaxDepth), "", "copy.max_depth")
	}

	if cfg.Copy.Initializers != nil && !*cfg.Copy.Initializers {
		res.AddInfo("initializers_off", "registered initializers are ignored, aggregates start from zero values", "", "copy.initializers")
	}

	return res
}

// Features converts the copy section into copier feature flags.
func (c Copy) Features() options.FeatureEnum {
	f := options.FeatureAll
	f = f.With(options.FeatureUnexported, enabled(c.Unexported))
	f = f.With(options.FeatureInitializers, enabled(c.Initializers))
	f = f.With(options.FeatureContainerFallback, enabled(c.ContainerFallback))
	f = f.With(options.FeatureInteriorPointers, enabled(c.InteriorPointers))

	return f
}

func enabled(b *bool) bool {
	return b == nil || *b
}
