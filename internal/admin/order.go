// Package admin lists submitted orders for staff: filter by status tab and
// date, page through the result, remember per-session preferences, and
// export to a spreadsheet.
package admin

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StatusCompleted marks an order as closed.
const StatusCompleted = "completed"

// ErrInvalidOrder is returned when an exported order record cannot be read.
var ErrInvalidOrder = errors.New("invalid order record")

// Order is one submitted order as exported by the storefront.
type Order struct {
	ID          int       `json:"id"`
	OrderNumber string    `json:"order_number"`
	Email       string    `json:"email"`
	PONumber    string    `json:"po_number"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	TotalCost   float64   `json:"total_cost"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
}

// Closed reports whether the order is complete.
func (o Order) Closed() bool {
	return strings.EqualFold(o.Status, StatusCompleted)
}

// record is the on-disk form. created_at is kept as text so both quoted
// JSON strings and bare YAML timestamps decode.
type record struct {
	ID          int     `yaml:"id"`
	OrderNumber string  `yaml:"order_number"`
	Email       string  `yaml:"email"`
	PONumber    string  `yaml:"po_number"`
	Status      string  `yaml:"status"`
	CreatedAt   string  `yaml:"created_at"`
	TotalCost   float64 `yaml:"total_cost"`
	Thumbnail   string  `yaml:"thumbnail"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
}

// LoadOrders reads an order export in YAML or JSON.
func LoadOrders(path string) ([]Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	return ParseOrders(data)
}

// ParseOrders decodes an order export. The document is either a list of
// orders or a mapping with an "orders" list.
func ParseOrders(data []byte) ([]Order, error) {
	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		var doc struct {
			Orders []record `yaml:"orders"`
		}
		if err2 := yaml.Unmarshal(data, &doc); err2 != nil {
			return nil, fmt.Errorf("parse orders: %w", err)
		}
		records = doc.Orders
	}

	result := make([]Order, 0, len(records))
	for i, r := range records {
		o, err := r.order()
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i+1, err)
		}
		result = append(result, o)
	}
	return result, nil
}

func (r record) order() (Order, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return Order{}, err
	}

	return Order{
		ID:          r.ID,
		OrderNumber: r.OrderNumber,
		Email:       r.Email,
		PONumber:    r.PONumber,
		Status:      r.Status,
		CreatedAt:   created,
		TotalCost:   r.TotalCost,
		Thumbnail:   r.Thumbnail,
	}, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: created_at is required", ErrInvalidOrder)
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: created_at %q", ErrInvalidOrder, s)
}
