// Package orders holds the in-memory registry of order items built up while
// a customer prepares a print order.
package orders

import "errors"

// Domain errors for order item operations.
var (
	ErrNotFound = errors.New("order item not found")
	ErrNoFile   = errors.New("order item has no file")
)
