// Package pricing converts raw image geometry into a billable physical size
// and price. Every function in this package is pure.
package pricing

import "errors"

// Domain errors for sizing and pricing.
var (
	ErrInvalidGeometry  = errors.New("invalid image geometry")
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidAxis      = errors.New("invalid axis")
)
