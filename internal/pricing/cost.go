package pricing

import (
	"fmt"
	"math"
)

// Quote is the breakdown of a single cost computation.
type Quote struct {
	RoundedWidth  float64 `json:"rounded_width"`
	RoundedHeight float64 `json:"rounded_height"`
	Area          float64 `json:"area"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	Cost          float64 `json:"cost"`
}

// RoundHalfUp rounds v to its two-decimal display value and then to the
// nearest whole number, with .5 rounding away from zero. The result stays a
// float64 so edges beyond the int range keep their magnitude.
func RoundHalfUp(v float64) float64 {
	return math.Round(round2(v))
}

// Explain prices one item and returns every intermediate value.
// Each edge is billed in whole inches with a one-inch minimum.
// Quantities below one are billed as one.
func Explain(width, height float64, quantity int, unitPrice float64) Quote {
	if quantity < 1 {
		quantity = 1
	}

	w := max(1, RoundHalfUp(width))
	h := max(1, RoundHalfUp(height))
	area := w * h

	return Quote{
		RoundedWidth:  w,
		RoundedHeight: h,
		Area:          area,
		UnitPrice:     unitPrice,
		Quantity:      quantity,
		Cost:          area * unitPrice * float64(quantity),
	}
}

// ComputeCost returns rounded area × unitPrice × quantity.
func ComputeCost(width, height float64, quantity int, unitPrice float64) float64 {
	return Explain(width, height, quantity, unitPrice).Cost
}

// FormatMoney renders an amount in dollars with two decimals.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
