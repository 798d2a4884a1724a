package sizing

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/JaimeStill/print-orders/internal/orders"
	"github.com/JaimeStill/print-orders/internal/pricing"
)

// Local sizes images from their decoded pixel dimensions and the configured DPI.
type Local struct {
	model  pricing.Model
	logger *slog.Logger
}

// NewLocal creates a Local sizer.
func NewLocal(model pricing.Model, logger *slog.Logger) *Local {
	return &Local{
		model:  model,
		logger: logger.With("system", "sizing", "mode", "local"),
	}
}

// Size reads only the image header.
func (l *Local) Size(ctx context.Context, file orders.File) (pricing.Original, error) {
	rc, err := file.Open()
	if err != nil {
		return pricing.Original{}, fmt.Errorf("open %s: %w", file.Name(), err)
	}
	defer rc.Close()

	cfg, format, err := image.DecodeConfig(rc)
	if err != nil {
		return pricing.Original{}, fmt.Errorf("%w: %s: %v", ErrUnsupportedImage, file.Name(), err)
	}

	size, err := l.model.FromPixels(cfg.Width, cfg.Height)
	if err != nil {
		return pricing.Original{}, fmt.Errorf("%s: %w", file.Name(), err)
	}

	l.logger.Debug("image sized",
		"file", file.Name(),
		"format", format,
		"pixels", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"width", size.Width,
		"height", size.Height,
	)
	return size, nil
}
