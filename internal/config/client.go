package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/docker/go-units"
)

const (
	EnvClientBaseURL        = "PRINT_CLIENT_BASE_URL"
	EnvClientFileTimeout    = "PRINT_CLIENT_FILE_TIMEOUT"
	EnvClientRequestTimeout = "PRINT_CLIENT_REQUEST_TIMEOUT"
	EnvClientMaxFileSize    = "PRINT_CLIENT_MAX_FILE_SIZE"
	EnvClientSizing         = "PRINT_CLIENT_SIZING"
)

// Sizing selects how freshly added images are measured.
type Sizing string

const (
	// SizingRemote asks the storefront for authoritative physical dimensions.
	SizingRemote Sizing = "remote"

	// SizingLocal decodes the image header and divides by the configured DPI.
	SizingLocal Sizing = "local"
)

// ClientConfig configures the storefront HTTP client and upload sequence.
type ClientConfig struct {
	BaseURL        string `toml:"base_url"`
	FileTimeout    string `toml:"file_timeout"`
	RequestTimeout string `toml:"request_timeout"`
	MaxFileSize    string `toml:"max_file_size"`
	SuccessPath    string `toml:"success_path"`
	Sizing         Sizing `toml:"sizing"`

	maxFileSizeVal int64
}

// FileTimeoutDuration returns the per-file upload deadline.
func (c *ClientConfig) FileTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.FileTimeout)
	return d
}

// RequestTimeoutDuration returns the deadline for non-upload requests.
func (c *ClientConfig) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// MaxFileSizeBytes returns the per-file size limit in bytes.
func (c *ClientConfig) MaxFileSizeBytes() int64 {
	return c.maxFileSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the client configuration.
func (c *ClientConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ClientConfig) Merge(overlay *ClientConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.FileTimeout != "" {
		c.FileTimeout = overlay.FileTimeout
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
	if size, err := units.RAMInBytes(overlay.MaxFileSize); err == nil {
		c.MaxFileSize = overlay.MaxFileSize
		c.maxFileSizeVal = size
	}
	if overlay.SuccessPath != "" {
		c.SuccessPath = overlay.SuccessPath
	}
	if overlay.Sizing != "" {
		c.Sizing = overlay.Sizing
	}
}

func (c *ClientConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:5000"
	}
	if c.FileTimeout == "" {
		c.FileTimeout = "30s"
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "60s"
	}
	if c.MaxFileSize == "" {
		c.MaxFileSize = "32MiB"
	}
	if c.SuccessPath == "" {
		c.SuccessPath = "/success"
	}
	if c.Sizing == "" {
		c.Sizing = SizingRemote
	}
}

func (c *ClientConfig) loadEnv() {
	if v := os.Getenv(EnvClientBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvClientFileTimeout); v != "" {
		c.FileTimeout = v
	}
	if v := os.Getenv(EnvClientRequestTimeout); v != "" {
		c.RequestTimeout = v
	}
	if v := os.Getenv(EnvClientMaxFileSize); v != "" {
		c.MaxFileSize = v
	}
	if v := os.Getenv(EnvClientSizing); v != "" {
		c.Sizing = Sizing(v)
	}
}

func (c *ClientConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url %q", c.BaseURL)
	}

	if d, err := time.ParseDuration(c.FileTimeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid file_timeout %q", c.FileTimeout)
	}
	if d, err := time.ParseDuration(c.RequestTimeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid request_timeout %q", c.RequestTimeout)
	}

	size, err := units.RAMInBytes(c.MaxFileSize)
	if err != nil {
		return fmt.Errorf("invalid max_file_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_file_size must be positive")
	}
	c.maxFileSizeVal = size

	switch c.Sizing {
	case SizingRemote, SizingLocal:
	default:
		return fmt.Errorf("invalid sizing %q (must be remote or local)", c.Sizing)
	}

	return nil
}
