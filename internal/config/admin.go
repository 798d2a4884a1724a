package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/print-orders/pkg/pagination"
)

const EnvAdminDefaultView = "PRINT_ADMIN_DEFAULT_VIEW"

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "PRINT_ADMIN_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "PRINT_ADMIN_MAX_PAGE_SIZE",
}

// AdminConfig configures the admin order listing.
type AdminConfig struct {
	DefaultView string            `toml:"default_view"`
	Pagination  pagination.Config `toml:"pagination"`
}

// Finalize applies defaults, loads environment overrides, and validates the admin configuration.
func (c *AdminConfig) Finalize() error {
	if c.DefaultView == "" {
		c.DefaultView = "open"
	}
	if v := os.Getenv(EnvAdminDefaultView); v != "" {
		c.DefaultView = v
	}
	if len(c.Pagination.PageSizes) == 0 {
		c.Pagination.PageSizes = []int{10, 20, 50, 100}
	}

	switch c.DefaultView {
	case "open", "closed", "all":
	default:
		return fmt.Errorf("invalid default_view %q (must be open, closed, or all)", c.DefaultView)
	}

	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AdminConfig) Merge(overlay *AdminConfig) {
	if overlay.DefaultView != "" {
		c.DefaultView = overlay.DefaultView
	}
	c.Pagination.Merge(&overlay.Pagination)
}
