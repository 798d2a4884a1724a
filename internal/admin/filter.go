package admin

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// View is a status tab of the order list.
type View string

const (
	ViewOpen   View = "open"
	ViewClosed View = "closed"
	ViewAll    View = "all"
)

// ParseView parses a tab name. An empty name selects every order.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case ViewOpen:
		return ViewOpen, nil
	case ViewClosed:
		return ViewClosed, nil
	case ViewAll, "":
		return ViewAll, nil
	default:
		return "", fmt.Errorf("unknown view %q (must be open, closed, or all)", s)
	}
}

// Match reports whether o belongs in the tab.
func (v View) Match(o Order) bool {
	switch v {
	case ViewOpen:
		return !o.Closed()
	case ViewClosed:
		return o.Closed()
	default:
		return true
	}
}

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD filter bound. An empty string is unbounded.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// Filter selects orders by tab and by an inclusive range of calendar days.
// Zero From or To leaves that side open.
type Filter struct {
	View View
	From time.Time
	To   time.Time
}

// Match reports whether o passes every criterion.
func (f Filter) Match(o Order) bool {
	if !f.View.Match(o) {
		return false
	}

	day := o.CreatedAt.UTC().Format(dateLayout)
	if !f.From.IsZero() && day < f.From.Format(dateLayout) {
		return false
	}
	if !f.To.IsZero() && day > f.To.Format(dateLayout) {
		return false
	}
	return true
}

// Apply returns the matching orders, newest first.
func (f Filter) Apply(orders []Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if f.Match(o) {
			out = append(out, o)
		}
	}

	slices.SortStableFunc(out, func(a, b Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}
