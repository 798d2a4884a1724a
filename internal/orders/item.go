package orders

import (
	"github.com/JaimeStill/print-orders/internal/pricing"
	"github.com/google/uuid"
)

// Item is one uploaded image and its billing attributes.
type Item struct {
	ID       uuid.UUID
	File     File
	Original pricing.Original
	Current  pricing.Size
	Quantity int
	Notes    string
}

// Detail is the per-item record sent to the storefront.
type Detail struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Quantity int     `json:"quantity"`
	Cost     float64 `json:"cost"`
	Filename string  `json:"filename"`
	Notes    string  `json:"notes"`
}

// Cost prices the item at its current size and quantity.
func (i Item) Cost(unitPrice float64) float64 {
	return pricing.ComputeCost(i.Current.Width, i.Current.Height, i.Quantity, unitPrice)
}

// Detail serializes the item for order creation and upload.
func (i Item) Detail(unitPrice float64) Detail {
	var name string
	if i.File != nil {
		name = i.File.Name()
	}

	return Detail{
		Width:    i.Current.Width,
		Height:   i.Current.Height,
		Quantity: i.Quantity,
		Cost:     i.Cost(unitPrice),
		Filename: name,
		Notes:    i.Notes,
	}
}
