// Package config provides application configuration management with support for
// TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/print-orders/pkg/logging"
	"github.com/JaimeStill/print-orders/pkg/storage"
	"github.com/pelletier/go-toml/v2"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvPrintEnv specifies the environment name for configuration overlays.
	EnvPrintEnv = "PRINT_ENV"
)

var loggingEnv = &logging.Env{
	Level:  "PRINT_LOG_LEVEL",
	Format: "PRINT_LOG_FORMAT",
	File:   "PRINT_LOG_FILE",
}

var storageEnv = &storage.Env{
	BasePath: "PRINT_STORAGE_BASE_PATH",
}

// Config represents the root configuration.
type Config struct {
	Logging logging.Config `toml:"logging"`
	Pricing PricingConfig  `toml:"pricing"`
	Client  ClientConfig   `toml:"client"`
	Admin   AdminConfig    `toml:"admin"`
	Storage storage.Config `toml:"storage"`
}

// Load reads the configuration file at path and applies any environment-specific
// overlay found next to it. An empty path means BaseConfigFile; when that default
// file does not exist an empty configuration is returned so Finalize can fill in
// defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = BaseConfigFile
	}

	cfg, err := load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			cfg = &Config{}
		} else {
			return nil, err
		}
	}

	if overlay := overlayPath(path); overlay != "" {
		o, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(o)
	}

	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Pricing.Finalize(); err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	if err := c.Client.Finalize(); err != nil {
		return fmt.Errorf("client: %w", err)
	}
	if err := c.Admin.Finalize(); err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	c.Logging.Merge(&overlay.Logging)
	c.Pricing.Merge(&overlay.Pricing)
	c.Client.Merge(&overlay.Client)
	c.Admin.Merge(&overlay.Admin)
	c.Storage.Merge(&overlay.Storage)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(base string) string {
	env := os.Getenv(EnvPrintEnv)
	if env == "" {
		return ""
	}

	overlay := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, strings.ToLower(env)))
	if _, err := os.Stat(overlay); err == nil {
		return overlay
	}
	return ""
}
