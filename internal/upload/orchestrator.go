// Package upload drives order submission: validate, create the order, then
// upload every file strictly in sequence, stopping at the first failure.
package upload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/JaimeStill/print-orders/internal/config"
	"github.com/JaimeStill/print-orders/internal/orders"
	"github.com/JaimeStill/print-orders/internal/storefront"
	"github.com/docker/go-units"
)

// Transport is the storefront surface the orchestrator needs.
type Transport interface {
	CreateOrder(ctx context.Context, req storefront.OrderRequest) (string, error)
	UploadFile(ctx context.Context, up storefront.FileUpload) (storefront.UploadResponse, error)
}

// Submission is the order metadata entered by the user.
type Submission struct {
	Email    string
	PONumber string
}

// Result describes a completed submission.
type Result struct {
	OrderID  string
	Uploaded []string
	Redirect string
}

// Orchestrator runs one submission at a time against a registry.
type Orchestrator struct {
	registry    *orders.Registry
	transport   Transport
	unitPrice   float64
	maxFileSize int64
	redirect    string
	logger      *slog.Logger

	inFlight atomic.Bool
	mu       sync.Mutex
	state    State
}

// New creates an orchestrator for registry using cfg's pricing and client settings.
func New(registry *orders.Registry, transport Transport, cfg *config.Config, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		registry:    registry,
		transport:   transport,
		unitPrice:   cfg.Pricing.UnitPrice,
		maxFileSize: cfg.Client.MaxFileSizeBytes(),
		redirect:    cfg.Client.SuccessPath,
		logger:      logger.With("system", "upload"),
	}
}

// State returns the current step.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Submit validates the registry, creates the order and uploads each item in
// insertion order. The first failed file aborts the rest. Files uploaded
// before a failure stay uploaded and are reported through
// *PartialUploadError. A concurrent call returns ErrInFlight.
func (o *Orchestrator) Submit(ctx context.Context, sub Submission, observe Observer) (*Result, error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		return nil, ErrInFlight
	}
	defer o.inFlight.Store(false)

	if observe == nil {
		observe = func(Status) {}
	}

	o.transition(StateValidating)
	observe(Status{State: StateValidating})

	items := o.registry.Items()
	if err := o.validate(items, sub); err != nil {
		o.transition(StateIdle)
		observe(Status{State: StateIdle, Err: err})
		return nil, err
	}

	details := make([]orders.Detail, len(items))
	var total float64
	for i, item := range items {
		details[i] = item.Detail(o.unitPrice)
		total += details[i].Cost
	}

	o.transition(StateCreatingOrder)
	observe(Status{State: StateCreatingOrder, Total: len(items)})

	orderID, err := o.transport.CreateOrder(ctx, storefront.OrderRequest{
		Email:     strings.TrimSpace(sub.Email),
		PONumber:  strings.TrimSpace(sub.PONumber),
		Details:   details,
		TotalCost: total,
	})
	if err != nil {
		if !errors.Is(err, ErrOrderCreation) {
			err = fmt.Errorf("%w: %w", ErrOrderCreation, err)
		}
		o.fail(observe, Status{Total: len(items), Err: err})
		return nil, err
	}

	o.logger.Info("order created", "order_id", orderID, "files", len(items), "total", total)

	uploaded := make([]string, 0, len(items))
	for i, item := range items {
		name := item.File.Name()
		status := Status{
			State:   StateUploading,
			OrderID: orderID,
			File:    name,
			Index:   i,
			Total:   len(items),
		}

		o.transition(StateUploading)
		status.Progress = progress(i, len(items))
		observe(status)

		err := ctx.Err()
		if err == nil {
			_, err = o.transport.UploadFile(ctx, storefront.FileUpload{
				OrderID: orderID,
				File:    item.File,
				Detail:  details[i],
				IsLast:  i == len(items)-1,
			})
		}

		if err != nil {
			failure := o.fileError(orderID, name, i, uploaded, err)
			status.Err = failure
			o.fail(observe, status)
			return nil, failure
		}

		uploaded = append(uploaded, name)
		status.Done = true
		status.Progress = progress(i+1, len(items))
		observe(status)

		o.logger.Debug("file uploaded", "order_id", orderID, "file", name, "progress", status.Progress)
	}

	o.transition(StateCompleted)
	observe(Status{
		State:    StateCompleted,
		OrderID:  orderID,
		Total:    len(items),
		Progress: 100,
	})

	o.logger.Info("order submitted", "order_id", orderID, "files", len(uploaded))

	return &Result{
		OrderID:  orderID,
		Uploaded: uploaded,
		Redirect: o.redirect,
	}, nil
}

func (o *Orchestrator) validate(items []orders.Item, sub Submission) error {
	if len(items) == 0 {
		return validation(ErrEmptyOrder, "")
	}
	if strings.TrimSpace(sub.Email) == "" {
		return validation(ErrMissingEmail, "")
	}

	if o.maxFileSize > 0 {
		for _, item := range items {
			if size := item.File.Size(); size > o.maxFileSize {
				return validation(ErrFileTooLarge, "%s is %s, limit is %s",
					item.File.Name(),
					units.BytesSize(float64(size)),
					units.BytesSize(float64(o.maxFileSize)),
				)
			}
		}
	}

	return nil
}

func (o *Orchestrator) fileError(orderID, name string, index int, uploaded []string, err error) error {
	fe := &FileError{File: name, Index: index, Err: err}
	if len(uploaded) == 0 {
		return fe
	}

	return &PartialUploadError{
		FileError: fe,
		OrderID:   orderID,
		Uploaded:  append([]string(nil), uploaded...),
	}
}

func (o *Orchestrator) fail(observe Observer, status Status) {
	o.transition(StateFailed)
	status.State = StateFailed
	observe(status)

	o.logger.Error("submission failed",
		"order_id", status.OrderID,
		"file", status.File,
		"error", status.Err,
	)
}

func (o *Orchestrator) transition(s State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = s
}

func progress(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
