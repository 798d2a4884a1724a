package pricing_test

import (
	"testing"

	"github.com/JaimeStill/print-orders/internal/pricing"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.5, 3},
		{2.49, 2},
		{2.499, 3},
		{8.4989376327959, 9},
		{0.4, 0},
		{12, 12},
		{3.5, 4},
		{4.5, 5},
		{1e19, 1e19},
	}

	for _, tt := range tests {
		if got := pricing.RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestComputeCost(t *testing.T) {
	tests := []struct {
		name      string
		w, h      float64
		qty       int
		unitPrice float64
		want      float64
	}{
		{"half rounds up", 2.5, 1, 1, 0.02, 0.06},
		{"whole inches", 10, 5, 2, 0.02, 2.00},
		{"display value drives rounding", 8.4989376327959, 12, 1, 0.02, 2.16},
		{"one inch minimum", 0.2, 0.3, 1, 0.02, 0.02},
		{"quantity coerced", 10, 5, 0, 0.02, 1.00},
		{"free", 10, 10, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ComputeCost(tt.w, tt.h, tt.qty, tt.unitPrice)
			if !approx(got, tt.want, 1e-9) {
				t.Errorf("ComputeCost(%v, %v, %d, %v) = %v, want %v", tt.w, tt.h, tt.qty, tt.unitPrice, got, tt.want)
			}
		})
	}
}

func TestComputeCost_Monotonic(t *testing.T) {
	const unitPrice = 0.02

	prev := 0.0
	for w := 0.1; w < 30; w += 0.07 {
		got := pricing.ComputeCost(w, 4, 1, unitPrice)
		if got < prev {
			t.Fatalf("ComputeCost(width=%v) = %v, below previous %v", w, got, prev)
		}
		prev = got
	}

	prev = 0
	for h := 0.1; h < 30; h += 0.07 {
		got := pricing.ComputeCost(4, h, 1, unitPrice)
		if got < prev {
			t.Fatalf("ComputeCost(height=%v) = %v, below previous %v", h, got, prev)
		}
		prev = got
	}

	prev = 0
	for q := 1; q <= 50; q++ {
		got := pricing.ComputeCost(7.3, 4.6, q, unitPrice)
		if got < prev {
			t.Fatalf("ComputeCost(quantity=%d) = %v, below previous %v", q, got, prev)
		}
		prev = got
	}
}

func TestComputeCost_MonotonicAtLargeSizes(t *testing.T) {
	const unitPrice = 0.02

	prev := 0.0
	for _, edge := range []float64{1e6, 1e9, 1e10, 1e12, 1e15, 1e19, 1e30} {
		got := pricing.ComputeCost(edge, edge, 1, unitPrice)
		if got < prev {
			t.Fatalf("ComputeCost(%v, %v) = %v, below previous %v", edge, edge, got, prev)
		}
		prev = got
	}

	if got, want := pricing.ComputeCost(1e10, 1e10, 1, unitPrice), 2e18; !approx(got, want, want*1e-12) {
		t.Errorf("ComputeCost(1e10, 1e10) = %v, want %v", got, want)
	}
	if got := pricing.ComputeCost(1e19, 1, 1, unitPrice); got < pricing.ComputeCost(1, 1, 1, unitPrice) {
		t.Errorf("ComputeCost(1e19, 1) = %v, bills below a one-inch print", got)
	}
}

func TestExplain(t *testing.T) {
	q := pricing.Explain(10.49, 4.5, 3, 0.02)

	if q.RoundedWidth != 10 {
		t.Errorf("RoundedWidth = %v, want 10", q.RoundedWidth)
	}
	if q.RoundedHeight != 5 {
		t.Errorf("RoundedHeight = %v, want 5", q.RoundedHeight)
	}
	if q.Area != 50 {
		t.Errorf("Area = %v, want 50", q.Area)
	}
	if !approx(q.Cost, 3.00, 1e-9) {
		t.Errorf("Cost = %v, want 3.00", q.Cost)
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "$2.00"},
		{0.06, "$0.06"},
		{1234.5, "$1234.50"},
		{0, "$0.00"},
	}

	for _, tt := range tests {
		if got := pricing.FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
