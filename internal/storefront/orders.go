package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/JaimeStill/print-orders/internal/orders"
)

// OrderRequest carries the aggregated order metadata.
type OrderRequest struct {
	Email     string
	PONumber  string
	Details   []orders.Detail
	TotalCost float64
}

// CreateOrder registers an order and returns the storefront's order id.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (string, error) {
	details, err := json.Marshal(req.Details)
	if err != nil {
		return "", fmt.Errorf("%w: encode details: %v", ErrOrderCreation, err)
	}

	fields := [][2]string{
		{"email", req.Email},
		{"po_number", req.PONumber},
		{"orderDetails", string(details)},
		{"totalCost", strconv.FormatFloat(req.TotalCost, 'f', -1, 64)},
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.postForm(ctx, pathCreateOrder, fields, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOrderCreation, err)
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return "", statusError(ErrOrderCreation, resp, "Failed to create order")
	}

	var body struct {
		OrderID any `json:"order_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrOrderCreation, err)
	}

	id := formatID(body.OrderID)
	if id == "" {
		return "", fmt.Errorf("%w: response missing order_id", ErrOrderCreation)
	}

	c.logger.Info("order created", "order_id", id, "items", len(req.Details))
	return id, nil
}

func formatID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}
