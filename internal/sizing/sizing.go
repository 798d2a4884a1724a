// Package sizing measures freshly added images and derives their original
// physical size.
package sizing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/print-orders/internal/config"
	"github.com/JaimeStill/print-orders/internal/orders"
	"github.com/JaimeStill/print-orders/internal/pricing"
	"github.com/JaimeStill/print-orders/internal/storefront"
	"golang.org/x/sync/errgroup"
)

// ErrUnsupportedImage is returned when an image header cannot be decoded.
var ErrUnsupportedImage = errors.New("unsupported image")

// Sizer derives the original physical size of an image file.
type Sizer interface {
	Size(ctx context.Context, file orders.File) (pricing.Original, error)
}

// New returns the Sizer selected by the client configuration. The storefront
// client is only required for remote sizing.
func New(cfg *config.Config, client *storefront.Client, logger *slog.Logger) (Sizer, error) {
	model := cfg.Pricing.Model()

	switch cfg.Client.Sizing {
	case config.SizingLocal:
		return NewLocal(model, logger), nil
	case config.SizingRemote:
		if client == nil {
			return nil, fmt.Errorf("remote sizing requires a storefront client")
		}
		return NewRemote(client, model, logger), nil
	default:
		return nil, fmt.Errorf("unknown sizing %q", cfg.Client.Sizing)
	}
}

// Result is the outcome of sizing one file.
type Result struct {
	File orders.File
	Size pricing.Original
	Err  error
}

// SizeAll sizes files with at most limit concurrent measurements. Results
// are returned in input order; a failure is recorded on its own Result and
// never stops the remaining files.
func SizeAll(ctx context.Context, s Sizer, files []orders.File, limit int) []Result {
	results := make([]Result, len(files))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, f := range files {
		g.Go(func() error {
			results[i].File = f
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Size, results[i].Err = s.Size(ctx, f)
			return nil
		})
	}

	g.Wait()
	return results
}
