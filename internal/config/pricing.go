package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/JaimeStill/print-orders/internal/pricing"
)

const (
	EnvPricingDPI       = "PRINT_PRICING_DPI"
	EnvPricingMaxInches = "PRINT_PRICING_MAX_INCHES"
	EnvPricingUnitPrice = "PRINT_PRICING_UNIT_PRICE"
)

// PricingConfig holds the constants of the dimension and cost model.
type PricingConfig struct {
	// DPI converts pixels to inches when images are sized locally.
	DPI float64 `toml:"dpi"`

	// MaxInches bounds either edge of a freshly added image. Zero selects
	// the default of 24; a negative value leaves images unbounded.
	MaxInches float64 `toml:"max_inches"`

	// UnitPrice is the price per square inch.
	UnitPrice float64 `toml:"unit_price"`

	// AcceptTypes lists the accepted file extensions.
	AcceptTypes []string `toml:"accept_types"`
}

// Model returns the pricing model for these settings.
func (c *PricingConfig) Model() pricing.Model {
	return pricing.Model{
		DPI:       c.DPI,
		MaxInches: c.MaxInches,
		UnitPrice: c.UnitPrice,
	}
}

// Accepts reports whether a file name has an accepted extension.
func (c *PricingConfig) Accepts(name string) bool {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return false
	}
	return slices.Contains(c.AcceptTypes, strings.ToLower(name[idx+1:]))
}

// Finalize applies defaults, loads environment overrides, and validates the pricing configuration.
func (c *PricingConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *PricingConfig) Merge(overlay *PricingConfig) {
	if overlay.DPI != 0 {
		c.DPI = overlay.DPI
	}
	if overlay.MaxInches != 0 {
		c.MaxInches = overlay.MaxInches
	}
	if overlay.UnitPrice != 0 {
		c.UnitPrice = overlay.UnitPrice
	}
	if len(overlay.AcceptTypes) > 0 {
		c.AcceptTypes = slices.Clone(overlay.AcceptTypes)
	}
}

func (c *PricingConfig) loadDefaults() {
	if c.DPI == 0 {
		c.DPI = 300
	}
	if c.MaxInches == 0 {
		c.MaxInches = 24
	}
	if c.UnitPrice == 0 {
		c.UnitPrice = 0.02
	}
	if len(c.AcceptTypes) == 0 {
		c.AcceptTypes = []string{"png"}
	}
}

func (c *PricingConfig) loadEnv() {
	if v := os.Getenv(EnvPricingDPI); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.DPI = f
		}
	}
	if v := os.Getenv(EnvPricingMaxInches); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.MaxInches = f
		}
	}
	if v := os.Getenv(EnvPricingUnitPrice); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.UnitPrice = f
		}
	}
}

func (c *PricingConfig) validate() error {
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive")
	}
	if c.UnitPrice < 0 {
		return fmt.Errorf("unit_price cannot be negative")
	}
	for i, t := range c.AcceptTypes {
		c.AcceptTypes[i] = strings.ToLower(strings.TrimPrefix(t, "."))
	}
	return nil
}
