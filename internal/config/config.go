// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"tco-calculator/core/tco"
	"tco-calculator/internal/errors"
	"tco-calculator/internal/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "TCO_"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Calculator contains calculation defaults
	Calculator CalculatorConfig `json:"calculator"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// Mode is the gin mode (debug, release, test)
	Mode string `json:"mode"`

	// MetricsEnabled exposes GET /metrics
	MetricsEnabled bool `json:"metrics_enabled"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// NoColor disables ANSI colors in CLI output
	NoColor bool `json:"no_color"`
}

// CalculatorConfig contains calculation defaults
type CalculatorConfig struct {
	// DefaultTimeframe is the horizon in years used when none is given
	DefaultTimeframe int `json:"default_timeframe"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:           ":8080",
			Mode:           "release",
			MetricsEnabled: true,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Calculator: CalculatorConfig{
			DefaultTimeframe: tco.DefaultTimeframe,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.tco-calculator.json
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tco-calculator.json"
	}
	return filepath.Join(home, ".tco-calculator.json")
}

// Load loads configuration from a file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, errors.Config("failed to read config", err).WithContext("path", path)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("invalid config file", err).WithContext("path", path)
	}

	return config, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Config("failed to load env file", err).WithContext("path", f)
		}
	}
	return nil
}

// ApplyEnv overrides settings from TCO_* environment variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := get("SERVER_MODE"); ok {
		c.Server.Mode = v
	}
	if v, ok := get("METRICS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Config(EnvPrefix+"METRICS must be a boolean", err)
		}
		c.Server.MetricsEnabled = b
	}
	if v, ok := get("OUTPUT_FORMAT"); ok {
		c.Output.DefaultFormat = v
	}
	if v, ok := get("NO_COLOR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Config(EnvPrefix+"NO_COLOR must be a boolean", err)
		}
		c.Output.NoColor = b
	}
	if v, ok := get("TIMEFRAME"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Config(EnvPrefix+"TIMEFRAME must be an integer", err)
		}
		c.Calculator.DefaultTimeframe = n
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.Logging.Format = v
	}
	if v, ok := get("LOG_OUTPUT"); ok {
		c.Logging.Output = v
	}
	return c.Validate()
}

// Validate checks values the hosts cannot coerce
func (c *Config) Validate() error {
	if c.Calculator.DefaultTimeframe < tco.MinTimeframe || c.Calculator.DefaultTimeframe > tco.MaxTimeframe {
		return errors.Newf(errors.TypeConfig, "default_timeframe must be between %d and %d, got %d",
			tco.MinTimeframe, tco.MaxTimeframe, c.Calculator.DefaultTimeframe)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return errors.Newf(errors.TypeConfig, "server mode must be debug, release or test, got %q", c.Server.Mode)
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("failed to create config directory", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Internal("failed to encode config", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
