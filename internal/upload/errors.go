package upload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JaimeStill/print-orders/internal/pricing"
	"github.com/JaimeStill/print-orders/internal/storefront"
)

// Validation errors. Each is returned wrapped together with ErrValidation.
var (
	ErrValidation   = errors.New("validation failed")
	ErrEmptyOrder   = errors.New("order contains no items")
	ErrMissingEmail = errors.New("email is required")
	ErrFileTooLarge = errors.New("file too large")
)

// ErrInFlight is returned when Submit is called while a submission runs.
var ErrInFlight = errors.New("submission already in progress")

// Failure kinds surfaced from the collaborators.
var (
	ErrGeometry      = pricing.ErrInvalidGeometry
	ErrNetwork       = storefront.ErrNetwork
	ErrTimeout       = storefront.ErrTimeout
	ErrUpload        = storefront.ErrUpload
	ErrOrderCreation = storefront.ErrOrderCreation
)

// FileError reports the file whose upload stopped the sequence.
type FileError struct {
	File  string
	Index int
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %d (%s): %v", e.Index+1, e.File, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// PartialUploadError is returned when the sequence failed after at least one
// file reached the storefront. Uploaded files are not rolled back.
type PartialUploadError struct {
	*FileError
	OrderID  string
	Uploaded []string
}

func (e *PartialUploadError) Error() string {
	return fmt.Sprintf("order %s partially uploaded (%s): %v",
		e.OrderID, strings.Join(e.Uploaded, ", "), e.FileError)
}

func (e *PartialUploadError) Unwrap() error {
	return e.FileError
}

func validation(err error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return fmt.Errorf("%w: %w: %s", ErrValidation, err, fmt.Sprintf(format, args...))
}
