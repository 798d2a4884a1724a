package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"

	"github.com/JaimeStill/print-orders/pkg/storage"
)

// Preferences is the remembered state of a staff session. From and To are
// the date filter the page was reached under, as YYYY-MM-DD.
type Preferences struct {
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
	View     View   `json:"view,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
}

var sessionPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// DefaultSession is used when no valid session name is given.
const DefaultSession = "default"

// PreferenceStore keeps Preferences in blob storage. Every operation is
// best effort: failures are logged and never returned.
type PreferenceStore struct {
	store  storage.System
	logger *slog.Logger
}

// NewPreferenceStore creates a preference store backed by store.
func NewPreferenceStore(store storage.System, logger *slog.Logger) *PreferenceStore {
	return &PreferenceStore{
		store:  store,
		logger: logger.With("system", "preferences"),
	}
}

// Load returns the saved preferences, or zero Preferences when none exist.
func (p *PreferenceStore) Load(ctx context.Context, session string) Preferences {
	data, err := p.store.Retrieve(ctx, key(session))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			p.logger.Warn("load preferences failed", "session", session, "error", err)
		}
		return Preferences{}
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		p.logger.Warn("discarding unreadable preferences", "session", session, "error", err)
		return Preferences{}
	}
	return prefs
}

// Save stores prefs for session.
func (p *PreferenceStore) Save(ctx context.Context, session string, prefs Preferences) {
	data, err := json.Marshal(prefs)
	if err != nil {
		p.logger.Warn("encode preferences failed", "session", session, "error", err)
		return
	}
	if err := p.store.Store(ctx, key(session), data); err != nil {
		p.logger.Warn("save preferences failed", "session", session, "error", err)
	}
}

// ChangeView switches tabs. The remembered page and page size are dropped.
func (p *PreferenceStore) ChangeView(ctx context.Context, session string, view View) Preferences {
	prefs := Preferences{View: view}
	p.Save(ctx, session, prefs)
	return prefs
}

// Clear forgets everything stored for session.
func (p *PreferenceStore) Clear(ctx context.Context, session string) {
	if err := p.store.Delete(ctx, key(session)); err != nil {
		p.logger.Warn("clear preferences failed", "session", session, "error", err)
	}
}

func key(session string) string {
	if !sessionPattern.MatchString(session) {
		session = DefaultSession
	}
	return "admin/" + session + ".json"
}
