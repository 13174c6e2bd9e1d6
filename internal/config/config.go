// Package config loads CLI settings from a .env file, an optional YAML file,
// and XLGRID_* environment variables, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/convert"
	"github.com/ukaji3/xlgrid-go/pkg/xlgrid/logging"
)

// ErrInvalidConfig is returned when a setting holds an unusable value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds CLI settings.
type Config struct {
	// Mode is "text" or "typed".
	Mode string `yaml:"mode"`
	// Workers bounds concurrent sheet decoding.
	Workers int `yaml:"workers"`
	// OnError is the conversion policy name: default, raise or null.
	OnError string `yaml:"on_error"`
	// Pretty enables indented JSON output.
	Pretty bool `yaml:"pretty"`
	// LogLevel is ERROR, WARN, INFO, DEBUG or TRACE.
	LogLevel string `yaml:"log_level"`
	// Sheets limits loading to the named sheets.
	Sheets []string `yaml:"sheets"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Mode:     "typed",
		Workers:  4,
		OnError:  "default",
		LogLevel: "WARN",
	}
}

// Load builds a Config. envFile is loaded when present (a missing file is not
// an error); path names an optional YAML file and must exist when non-empty.
// The result is not validated, so callers can apply their own overrides
// before calling Validate.
func Load(envFile, path string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if path == "" {
		path = os.Getenv("XLGRID_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Mode = getEnvOrDefault("XLGRID_MODE", cfg.Mode)
	cfg.Workers = getEnvIntOrDefault("XLGRID_WORKERS", cfg.Workers)
	cfg.OnError = getEnvOrDefault("XLGRID_ON_ERROR", cfg.OnError)
	cfg.Pretty = getEnvBoolOrDefault("XLGRID_PRETTY", cfg.Pretty)
	cfg.LogLevel = getEnvOrDefault("XLGRID_LOG_LEVEL", cfg.LogLevel)
}

// Validate checks every setting.
func (c *Config) Validate() error {
	switch c.Mode {
	case "text", "typed":
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, ok := convert.ParsePolicy(c.OnError); !ok {
		return fmt.Errorf("%w: on_error %q", ErrInvalidConfig, c.OnError)
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Policy returns the conversion policy named by OnError.
func (c *Config) Policy() convert.Policy {
	policy, _ := convert.ParsePolicy(c.OnError)
	return policy
}

// Level returns the logging level named by LogLevel, falling back to INFO.
func (c *Config) Level() logging.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
