package form

import (
	"context"
	"log/slog"
	"sync"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Notification is a transient message shown to the user.
type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Notifier displays notifications.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("system", "notify")}
}

func (l *LogNotifier) Notify(n Notification) {
	level := slog.LevelInfo
	switch n.Kind {
	case KindError:
		level = slog.LevelError
	case KindWarning:
		level = slog.LevelWarn
	}
	l.logger.Log(context.Background(), level, n.Message, "kind", n.Kind)
}

// Recorder keeps every notification in arrival order.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// Notifications returns a copy of everything recorded.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Clear discards recorded notifications.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

// multi fans a notification out to several notifiers.
type multi []Notifier

func (m multi) Notify(n Notification) {
	for _, notifier := range m {
		notifier.Notify(n)
	}
}

// Tee returns a Notifier that forwards to each of notifiers.
func Tee(notifiers ...Notifier) Notifier {
	return multi(notifiers)
}
