package admin

import (
	"context"
	"log/slog"
	"time"

	"github.com/JaimeStill/print-orders/internal/config"
	"github.com/JaimeStill/print-orders/pkg/pagination"
)

// Listing pages filtered orders and restores a session's last position.
type Listing struct {
	pagination  pagination.Config
	defaultView View
	prefs       *PreferenceStore
	logger      *slog.Logger
}

// NewListing creates a listing. prefs may be nil to disable remembering.
func NewListing(cfg *config.AdminConfig, prefs *PreferenceStore, logger *slog.Logger) *Listing {
	view, err := ParseView(cfg.DefaultView)
	if err != nil {
		view = ViewOpen
	}

	return &Listing{
		pagination:  cfg.Pagination,
		defaultView: view,
		prefs:       prefs,
		logger:      logger.With("system", "admin"),
	}
}

// Page filters orders and returns one page. The request is normalized and
// clamped to the last page.
func (l *Listing) Page(orders []Order, f Filter, req pagination.PageRequest) pagination.PageResult[Order] {
	if f.View == "" {
		f.View = l.defaultView
	}

	result := pagination.Slice(f.Apply(orders), req, l.pagination)

	l.logger.Debug("orders listed",
		"view", f.View,
		"total", result.Total,
		"page", result.Page,
		"page_size", result.PageSize,
	)
	return result
}

// Query is a listing request. View, Page and PageSize fall back to the
// session's remembered preferences when unset. Reset forgets them first.
type Query struct {
	Session  string
	View     View
	From     string
	To       string
	Page     int
	PageSize int
	Reset    bool
}

// Browse resolves q against stored preferences, pages the orders, and
// remembers the resulting position. A different view, date range, or page
// size than the one remembered starts again from the first page unless
// q.Page is set.
func (l *Listing) Browse(ctx context.Context, orders []Order, q Query) (pagination.PageResult[Order], error) {
	from, err := ParseDate(q.From)
	if err != nil {
		return pagination.PageResult[Order]{}, err
	}
	to, err := ParseDate(q.To)
	if err != nil {
		return pagination.PageResult[Order]{}, err
	}

	var saved Preferences
	if l.prefs != nil {
		if q.Reset {
			l.prefs.Clear(ctx, q.Session)
		} else {
			saved = l.prefs.Load(ctx, q.Session)
		}
	}

	view := q.View
	switch {
	case view == "" && saved.View != "":
		view = saved.View
	case view == "":
		view = l.defaultView
	case saved.View != "" && view != saved.View && l.prefs != nil:
		saved = l.prefs.ChangeView(ctx, q.Session, view)
	}

	fromDay, toDay := day(from), day(to)
	changed := fromDay != saved.From ||
		toDay != saved.To ||
		(q.PageSize != 0 && q.PageSize != saved.PageSize)

	req := pagination.PageRequest{Page: q.Page, PageSize: q.PageSize}
	if req.Page == 0 && !changed {
		req.Page = saved.Page
	}
	if req.PageSize == 0 {
		req.PageSize = saved.PageSize
	}

	result := l.Page(orders, Filter{View: view, From: from, To: to}, req)

	if l.prefs != nil {
		l.prefs.Save(ctx, q.Session, Preferences{
			Page:     result.Page,
			PageSize: result.PageSize,
			View:     view,
			From:     fromDay,
			To:       toDay,
		})
	}
	return result, nil
}

func day(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
