// Package storefront is the HTTP client for the print shop's order endpoints:
// image sizing, order creation, and per-file upload.
package storefront

import "errors"

// Errors returned by Client. Non-2xx responses wrap ErrNetwork together with
// the operation-specific error.
var (
	ErrNetwork       = errors.New("network error")
	ErrTimeout       = errors.New("request timed out")
	ErrDimensions    = errors.New("dimension lookup failed")
	ErrOrderCreation = errors.New("order creation failed")
	ErrUpload        = errors.New("upload failed")
)
