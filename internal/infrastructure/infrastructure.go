// Package infrastructure assembles the shared dependencies (logging, session
// storage, the storefront client, image sizing) that order forms and the
// admin listing are built from.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/JaimeStill/print-orders/internal/admin"
	"github.com/JaimeStill/print-orders/internal/config"
	"github.com/JaimeStill/print-orders/internal/form"
	"github.com/JaimeStill/print-orders/internal/orders"
	"github.com/JaimeStill/print-orders/internal/sizing"
	"github.com/JaimeStill/print-orders/internal/storefront"
	"github.com/JaimeStill/print-orders/internal/upload"
	"github.com/JaimeStill/print-orders/pkg/logging"
	"github.com/JaimeStill/print-orders/pkg/storage"
)

// Infrastructure holds the systems shared by every order session.
type Infrastructure struct {
	Config  *config.Config
	Logger  *slog.Logger
	Storage storage.System
	Client  *storefront.Client
	Sizer   sizing.Sizer

	closeLog func() error
}

// New creates an Infrastructure from a finalized configuration. Logs are
// written to the configured log file, or to logOut when none is set.
// Callers Close the result.
func New(cfg *config.Config, logOut io.Writer) (*Infrastructure, error) {
	out, closeLog, err := cfg.Logging.Open(logOut)
	if err != nil {
		return nil, fmt.Errorf("logging init failed: %w", err)
	}
	logger := logging.New(&cfg.Logging, out)

	infra, err := assemble(cfg, logger)
	if err != nil {
		closeLog()
		return nil, err
	}
	infra.closeLog = closeLog
	return infra, nil
}

func assemble(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	client, err := storefront.New(&cfg.Client, logger)
	if err != nil {
		return nil, fmt.Errorf("storefront init failed: %w", err)
	}

	sizer, err := sizing.New(cfg, client, logger)
	if err != nil {
		return nil, fmt.Errorf("sizing init failed: %w", err)
	}

	return &Infrastructure{
		Config:  cfg,
		Logger:  logger,
		Storage: store,
		Client:  client,
		Sizer:   sizer,
	}, nil
}

// Close releases the log file, if one was opened.
func (i *Infrastructure) Close() error {
	if i.closeLog == nil {
		return nil
	}
	return i.closeLog()
}

// Session is one order form and the registry behind it.
type Session struct {
	Registry     *orders.Registry
	Orchestrator *upload.Orchestrator
	Form         *form.Adapter
}

// NewSession starts an empty order form reporting through notifier.
func (i *Infrastructure) NewSession(notifier form.Notifier) *Session {
	registry := orders.NewRegistry()
	orchestrator := upload.New(registry, i.Client, i.Config, i.Logger)

	return &Session{
		Registry:     registry,
		Orchestrator: orchestrator,
		Form:         form.New(i.Config, registry, i.Sizer, orchestrator, notifier, i.Logger),
	}
}

// NewListing creates the admin order listing with per-session preferences.
func (i *Infrastructure) NewListing() *admin.Listing {
	prefs := admin.NewPreferenceStore(i.Storage, i.Logger)
	return admin.NewListing(&i.Config.Admin, prefs, i.Logger)
}
