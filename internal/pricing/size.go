package pricing

import (
	"fmt"
	"math"
)

// MinDimension is the smallest printable edge, in inches.
const MinDimension = 0.1

// Original is the immutable physical size of an image computed at insertion.
type Original struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
}

// Size is a mutable physical size in inches.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Size returns the original dimensions as a mutable Size.
func (o Original) Size() Size {
	return Size{Width: o.Width, Height: o.Height}
}

// DeriveSize converts pixel dimensions to inches at dpi. When either edge
// exceeds maxInches both edges are scaled down uniformly so neither does.
// A maxInches of zero or less disables the bound.
func DeriveSize(pixelWidth, pixelHeight int, dpi, maxInches float64) (Original, error) {
	if pixelWidth <= 0 || pixelHeight <= 0 {
		return Original{}, fmt.Errorf("%w: pixel size %dx%d", ErrInvalidGeometry, pixelWidth, pixelHeight)
	}
	if dpi <= 0 || math.IsNaN(dpi) || math.IsInf(dpi, 0) {
		return Original{}, fmt.Errorf("%w: dpi %v", ErrInvalidGeometry, dpi)
	}

	width := float64(pixelWidth) / dpi
	height := float64(pixelHeight) / dpi
	aspect := float64(pixelWidth) / float64(pixelHeight)

	return bound(width, height, aspect, maxInches), nil
}

// FromPhysical builds an Original from dimensions already expressed in
// inches, such as those reported by the storefront, applying the same bound
// as DeriveSize.
func FromPhysical(width, height, maxInches float64) (Original, error) {
	if !positive(width) || !positive(height) {
		return Original{}, fmt.Errorf("%w: physical size %vx%v", ErrInvalidGeometry, width, height)
	}
	return bound(width, height, width/height, maxInches), nil
}

func bound(width, height, aspect, maxInches float64) Original {
	if maxInches > 0 && (width > maxInches || height > maxInches) {
		scale := min(maxInches/width, maxInches/height, 1)
		width = min(maxInches, width*scale)
		height = min(maxInches, height*scale)
	}

	return Original{
		Width:       width,
		Height:      height,
		AspectRatio: aspect,
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
