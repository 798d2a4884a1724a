// Package form adapts user interface events into calls on the order core.
// Raw field input arrives as strings; the adapter parses it, applies the
// change, and reports the outcome through a Notifier.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/JaimeStill/print-orders/internal/config"
	"github.com/JaimeStill/print-orders/internal/orders"
	"github.com/JaimeStill/print-orders/internal/pricing"
	"github.com/JaimeStill/print-orders/internal/sizing"
	"github.com/JaimeStill/print-orders/internal/upload"
	"github.com/google/uuid"
)

// ErrInvalidInput is returned when raw field input cannot be parsed.
var ErrInvalidInput = errors.New("invalid input")

const defaultConcurrency = 4

// Adapter binds an order session to its collaborators.
type Adapter struct {
	registry     *orders.Registry
	sizer        sizing.Sizer
	orchestrator *upload.Orchestrator
	model        pricing.Model
	accepts      func(name string) bool
	notifier     Notifier
	logger       *slog.Logger
}

// New creates an adapter for registry.
func New(
	cfg *config.Config,
	registry *orders.Registry,
	sizer sizing.Sizer,
	orchestrator *upload.Orchestrator,
	notifier Notifier,
	logger *slog.Logger,
) *Adapter {
	return &Adapter{
		registry:     registry,
		sizer:        sizer,
		orchestrator: orchestrator,
		model:        cfg.Pricing.Model(),
		accepts:      cfg.Pricing.Accepts,
		notifier:     notifier,
		logger:       logger.With("system", "form"),
	}
}

// AddFiles sizes and inserts files, returning the ids of the new items in
// input order. Files that are rejected or fail to size are reported
// individually and skipped.
func (a *Adapter) AddFiles(ctx context.Context, files []orders.File) []uuid.UUID {
	accepted := make([]orders.File, 0, len(files))
	for _, f := range files {
		if !a.accepts(f.Name()) {
			a.warn("%s is not a supported file type", f.Name())
			continue
		}
		accepted = append(accepted, f)
	}

	ids := make([]uuid.UUID, 0, len(accepted))
	for _, r := range sizing.SizeAll(ctx, a.sizer, accepted, defaultConcurrency) {
		if r.Err != nil {
			a.logger.Error("sizing failed", "file", r.File.Name(), "error", r.Err)
			a.notify(KindError, "Error processing %s: %v", r.File.Name(), r.Err)
			continue
		}
		id, err := a.registry.Insert(r.File, r.Size)
		if err != nil {
			a.notify(KindError, "Error processing %s: %v", r.File.Name(), err)
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) > 0 {
		a.notify(KindSuccess, "Successfully added %d image(s) to your order", len(ids))
	}
	return ids
}

// SetWidth applies a raw width edit. The height follows the aspect ratio.
func (a *Adapter) SetWidth(id uuid.UUID, raw string) (orders.Item, error) {
	return a.setDimension(id, pricing.Width, raw)
}

// SetHeight applies a raw height edit. The width follows the aspect ratio.
func (a *Adapter) SetHeight(id uuid.UUID, raw string) (orders.Item, error) {
	return a.setDimension(id, pricing.Height, raw)
}

func (a *Adapter) setDimension(id uuid.UUID, axis pricing.Axis, raw string) (orders.Item, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value <= 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		a.warn("%s must be a positive number", axisLabel(axis))
		return a.current(id), fmt.Errorf("%w: %s %q", ErrInvalidInput, axis, raw)
	}

	item, err := a.registry.SetDimension(id, axis, value)
	if err != nil {
		return a.reject(id, err)
	}
	return item, nil
}

// SetQuantity applies a raw quantity edit. Non-numeric input leaves the
// quantity unchanged. Numbers below one become one.
func (a *Adapter) SetQuantity(id uuid.UUID, raw string) (orders.Item, error) {
	n, err := parseQuantity(raw)
	if err != nil {
		a.warn("Quantity must be a whole number")
		return a.current(id), fmt.Errorf("%w: quantity %q", ErrInvalidInput, raw)
	}

	item, err := a.registry.SetQuantity(id, n)
	if err != nil {
		return a.reject(id, err)
	}
	return item, nil
}

// SetNotes replaces an item's notes.
func (a *Adapter) SetNotes(id uuid.UUID, notes string) (orders.Item, error) {
	item, err := a.registry.SetNotes(id, notes)
	if err != nil {
		return a.reject(id, err)
	}
	return item, nil
}

// Remove deletes an item. Unknown ids are ignored.
func (a *Adapter) Remove(id uuid.UUID) {
	if a.registry.Remove(id) {
		a.logger.Debug("item removed", "id", id)
	}
}

// Reset clears the whole form.
func (a *Adapter) Reset() {
	a.registry.Reset()
	a.logger.Debug("form reset")
}

// ItemCost returns the cost of one item.
func (a *Adapter) ItemCost(id uuid.UUID) (float64, error) {
	return a.registry.Cost(id, a.model.UnitPrice)
}

// Total returns the cost of the whole order.
func (a *Adapter) Total() float64 {
	return a.registry.TotalCost(a.model.UnitPrice)
}

// Submit sends the order. Every outcome is reported through the notifier;
// on success the form is reset.
func (a *Adapter) Submit(ctx context.Context, email, poNumber string, observe upload.Observer) (*upload.Result, error) {
	result, err := a.orchestrator.Submit(ctx, upload.Submission{Email: email, PONumber: poNumber}, observe)
	if err != nil {
		a.notifier.Notify(Notification{Kind: failureKind(err), Message: failureMessage(err)})
		return nil, err
	}

	a.notify(KindSuccess, "Order %s submitted successfully", result.OrderID)
	a.registry.Reset()
	return result, nil
}

func (a *Adapter) current(id uuid.UUID) orders.Item {
	item, _ := a.registry.Get(id)
	return item
}

func (a *Adapter) reject(id uuid.UUID, err error) (orders.Item, error) {
	if errors.Is(err, orders.ErrNotFound) {
		a.notify(KindError, "Item not found")
	} else {
		a.warn("%v", err)
	}
	return a.current(id), err
}

func (a *Adapter) notify(kind Kind, format string, args ...any) {
	a.notifier.Notify(Notification{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (a *Adapter) warn(format string, args ...any) {
	a.notify(KindWarning, format, args...)
}

func parseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, ErrInvalidInput
		}
		return n, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.Abs(f) > math.MaxInt32 {
		return 0, ErrInvalidInput
	}
	return int(f), nil
}

func axisLabel(axis pricing.Axis) string {
	if axis == pricing.Height {
		return "Height"
	}
	return "Width"
}

func failureKind(err error) Kind {
	switch {
	case errors.Is(err, upload.ErrInFlight):
		return KindInfo
	case errors.Is(err, upload.ErrEmptyOrder), errors.Is(err, upload.ErrMissingEmail):
		return KindWarning
	default:
		return KindError
	}
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, upload.ErrInFlight):
		return "Your order is already being submitted"
	case errors.Is(err, upload.ErrEmptyOrder):
		return "Please add at least one image to your order"
	case errors.Is(err, upload.ErrMissingEmail):
		return "Please enter your email address"
	case errors.Is(err, upload.ErrFileTooLarge):
		return fmt.Sprintf("File too large: %v", err)
	case errors.Is(err, upload.ErrOrderCreation):
		return fmt.Sprintf("Failed to create order: %v", err)
	}

	var fe *upload.FileError
	if !errors.As(err, &fe) {
		return fmt.Sprintf("Error submitting order: %v", err)
	}

	var msg string
	if errors.Is(err, upload.ErrTimeout) {
		msg = fmt.Sprintf("Upload timed out for %s", fe.File)
	} else {
		msg = fmt.Sprintf("Failed to upload %s: %v", fe.File, fe.Err)
	}

	var partial *upload.PartialUploadError
	if errors.As(err, &partial) {
		msg += fmt.Sprintf(" (%d file(s) already uploaded for order %s)", len(partial.Uploaded), partial.OrderID)
	}
	return msg
}
