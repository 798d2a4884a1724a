package sizing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/print-orders/internal/orders"
	"github.com/JaimeStill/print-orders/internal/pricing"
	"github.com/JaimeStill/print-orders/internal/storefront"
)

// Remote sizes images with the storefront's dimension service, which is
// authoritative for physical size.
type Remote struct {
	client *storefront.Client
	model  pricing.Model
	logger *slog.Logger
}

// NewRemote creates a Remote sizer.
func NewRemote(client *storefront.Client, model pricing.Model, logger *slog.Logger) *Remote {
	return &Remote{
		client: client,
		model:  model,
		logger: logger.With("system", "sizing", "mode", "remote"),
	}
}

// Size uploads the image to the dimension service and bounds the reply.
func (r *Remote) Size(ctx context.Context, file orders.File) (pricing.Original, error) {
	rc, err := file.Open()
	if err != nil {
		return pricing.Original{}, fmt.Errorf("open %s: %w", file.Name(), err)
	}
	defer rc.Close()

	p, err := r.client.Dimensions(ctx, file.Name(), rc)
	if err != nil {
		return pricing.Original{}, err
	}

	size, err := r.model.FromInches(p.Width, p.Height)
	if err != nil {
		return pricing.Original{}, fmt.Errorf("%s: %w", file.Name(), err)
	}

	r.logger.Debug("image sized", "file", file.Name(), "width", size.Width, "height", size.Height)
	return size, nil
}
