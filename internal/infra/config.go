package infra

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values for optional configuration fields.
const (
	DefaultAppName  = "tradescope"
	DefaultLogLevel = "info"
)

// Config holds every setting of the application.
// Values loaded by LoadConfig are overridden by environment variables.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Exchange struct {
		// Name is matched case-insensitively against the capability catalog.
		Name string `yaml:"name"`
		// CatalogPath replaces the built-in capability catalog when set.
		CatalogPath string `yaml:"catalog_path"`
	} `yaml:"exchange"`

	FreqAI struct {
		Enabled     bool `yaml:"enabled"`
		Tensorboard struct {
			Activate bool   `yaml:"activate"`
			Logdir   string `yaml:"logdir"`
			Verbose  int    `yaml:"verbose"`
		} `yaml:"tensorboard"`
	} `yaml:"freqai"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration, applies env overrides and defaults, then validates.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	overrideWithEnv(&cfg)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = DefaultAppName
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Exchange.Name) == "" {
		return errors.New("exchange.name is required")
	}

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	if c.FreqAI.Tensorboard.Verbose < 0 {
		return fmt.Errorf("freqai.tensorboard.verbose must be >= 0, got %d", c.FreqAI.Tensorboard.Verbose)
	}

	return nil
}

// overrideWithEnv replaces config values with environment variables when present.
// Environment variables take precedence over the config file.
func overrideWithEnv(cfg *Config) {
	if name := os.Getenv("TRADESCOPE_EXCHANGE"); name != "" {
		cfg.Exchange.Name = name
	}
	if level := os.Getenv("TRADESCOPE_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if dir := os.Getenv("TRADESCOPE_TENSORBOARD_DIR"); dir != "" {
		cfg.FreqAI.Tensorboard.Logdir = dir
	}
}

// ParseLevel maps a config level name onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
