package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Env names the environment variables that override Config.
type Env struct {
	Level  string
	Format string
	File   string
}

// Config selects how much is logged, in which format, and where.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`

	// File receives log records instead of the caller's fallback writer.
	// Records are appended; the file and its directory are created as needed.
	File string `toml:"file"`
}

// Finalize fills defaults (warn, text), applies env, and validates.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelWarn
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if env != nil {
		if v := os.Getenv(env.Level); v != "" {
			c.Level = Level(v)
		}
		if v := os.Getenv(env.Format); v != "" {
			c.Format = Format(v)
		}
		if v := os.Getenv(env.File); v != "" {
			c.File = v
		}
	}

	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

// Merge applies the overlay's non-empty fields.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.File != "" {
		c.File = overlay.File
	}
}

// Open returns where records should go: File when set, otherwise fallback.
// The returned close function is never nil.
func (c *Config) Open(fallback io.Writer) (io.Writer, func() error, error) {
	if c.File == "" {
		return fallback, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(c.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
