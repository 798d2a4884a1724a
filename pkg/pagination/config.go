// Package pagination provides types and utilities for paging through
// in-memory result sets.
package pagination

import (
	"fmt"
	"os"
	"slices"
	"strconv"
)

// ConfigEnv maps environment variable names for pagination configuration.
type ConfigEnv struct {
	DefaultPageSize string
	MaxPageSize     string
}

// Config holds pagination settings including default and maximum page sizes.
// PageSizes, when set, restricts requests to a fixed set of choices.
type Config struct {
	DefaultPageSize int   `toml:"default_page_size"`
	MaxPageSize     int   `toml:"max_page_size"`
	PageSizes       []int `toml:"page_sizes"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultPageSize != 0 {
		c.DefaultPageSize = overlay.DefaultPageSize
	}
	if overlay.MaxPageSize != 0 {
		c.MaxPageSize = overlay.MaxPageSize
	}
	if len(overlay.PageSizes) > 0 {
		c.PageSizes = slices.Clone(overlay.PageSizes)
	}
}

// Allows reports whether size is an acceptable page size.
func (c Config) Allows(size int) bool {
	if size < 1 || size > c.MaxPageSize {
		return false
	}
	if len(c.PageSizes) == 0 {
		return true
	}
	return slices.Contains(c.PageSizes, size)
}

func (c *Config) loadDefaults() {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = 20
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = 100
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.DefaultPageSize != "" {
		if v := os.Getenv(env.DefaultPageSize); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.DefaultPageSize = n
			}
		}
	}
	if env.MaxPageSize != "" {
		if v := os.Getenv(env.MaxPageSize); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxPageSize = n
			}
		}
	}
}

func (c *Config) validate() error {
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("default_page_size must be positive")
	}
	if c.MaxPageSize < 1 {
		return fmt.Errorf("max_page_size must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default_page_size cannot exceed max_page_size")
	}
	for _, size := range c.PageSizes {
		if size < 1 || size > c.MaxPageSize {
			return fmt.Errorf("page size %d outside [1-%d]", size, c.MaxPageSize)
		}
	}
	if len(c.PageSizes) > 0 && !slices.Contains(c.PageSizes, c.DefaultPageSize) {
		return fmt.Errorf("default_page_size %d not in page_sizes", c.DefaultPageSize)
	}
	return nil
}
