package pricing

import (
	"fmt"
	"math"
)

// Axis identifies one edge of an order item.
type Axis string

const (
	Width  Axis = "width"
	Height Axis = "height"
)

// UpdateDimension sets one axis of current to value and recomputes the other
// from the original aspect ratio. Both results are rounded to two decimals
// and floored at MinDimension. On invalid input the current size is returned
// unchanged along with ErrInvalidDimension or ErrInvalidAxis.
func UpdateDimension(original Original, current Size, axis Axis, value float64) (Size, error) {
	if !positive(value) {
		return current, fmt.Errorf("%w: %v must be a positive number", ErrInvalidDimension, value)
	}
	if !positive(original.AspectRatio) {
		return current, fmt.Errorf("%w: aspect ratio %v", ErrInvalidGeometry, original.AspectRatio)
	}

	switch axis {
	case Width:
		return Size{
			Width:  clampDimension(value),
			Height: clampDimension(value / original.AspectRatio),
		}, nil
	case Height:
		return Size{
			Width:  clampDimension(value * original.AspectRatio),
			Height: clampDimension(value),
		}, nil
	default:
		return current, fmt.Errorf("%w: %q", ErrInvalidAxis, axis)
	}
}

func clampDimension(v float64) float64 {
	return math.Max(MinDimension, round2(v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
