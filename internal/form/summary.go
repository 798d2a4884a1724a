package form

import (
	"github.com/JaimeStill/print-orders/internal/pricing"
	"github.com/google/uuid"
)

// Row is one rendered order line.
type Row struct {
	ID       uuid.UUID     `json:"id"`
	Filename string        `json:"filename"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Quantity int           `json:"quantity"`
	Notes    string        `json:"notes"`
	Quote    pricing.Quote `json:"quote"`
	Cost     string        `json:"cost"`
}

// Summary is the renderable state of the whole form.
type Summary struct {
	Rows  []Row   `json:"rows"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
	Price string  `json:"price"`
}

// Summary snapshots the form for rendering.
func (a *Adapter) Summary() Summary {
	items := a.registry.Items()
	rows := make([]Row, len(items))

	var total float64
	for i, item := range items {
		quote := a.model.Quote(item.Current, item.Quantity)
		total += quote.Cost

		rows[i] = Row{
			ID:       item.ID,
			Filename: item.File.Name(),
			Width:    item.Current.Width,
			Height:   item.Current.Height,
			Quantity: item.Quantity,
			Notes:    item.Notes,
			Quote:    quote,
			Cost:     pricing.FormatMoney(quote.Cost),
		}
	}

	return Summary{
		Rows:  rows,
		Count: len(rows),
		Total: total,
		Price: pricing.FormatMoney(total),
	}
}
