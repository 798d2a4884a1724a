package pricing_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/JaimeStill/print-orders/internal/pricing"
)

const tolerance = 1e-9

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestDeriveSize(t *testing.T) {
	tests := []struct {
		name       string
		px, py     int
		dpi, bound float64
		wantW      float64
		wantH      float64
	}{
		{"within bound", 3000, 1500, 300, 24, 10, 5},
		{"width over bound", 9000, 3000, 300, 24, 24, 8},
		{"height over bound", 1500, 9000, 300, 24, 4, 24},
		{"both over bound", 12000, 9000, 300, 24, 24, 18},
		{"bound disabled", 9000, 3000, 300, 0, 30, 10},
		{"exactly at bound", 7200, 7200, 300, 24, 24, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.DeriveSize(tt.px, tt.py, tt.dpi, tt.bound)
			if err != nil {
				t.Fatalf("DeriveSize() error = %v", err)
			}
			if !approx(got.Width, tt.wantW, tolerance) {
				t.Errorf("Width = %v, want %v", got.Width, tt.wantW)
			}
			if !approx(got.Height, tt.wantH, tolerance) {
				t.Errorf("Height = %v, want %v", got.Height, tt.wantH)
			}
		})
	}
}

func TestDeriveSize_InvalidGeometry(t *testing.T) {
	tests := []struct {
		name   string
		px, py int
		dpi    float64
	}{
		{"zero width", 0, 100, 300},
		{"negative height", 100, -1, 300},
		{"zero dpi", 100, 100, 0},
		{"negative dpi", 100, 100, -72},
		{"nan dpi", 100, 100, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pricing.DeriveSize(tt.px, tt.py, tt.dpi, 24)
			if !errors.Is(err, pricing.ErrInvalidGeometry) {
				t.Errorf("DeriveSize() error = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}

func TestDeriveSize_NeverExceedsBoundAndKeepsRatio(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	const bound = 24.0

	for range 2000 {
		px := rng.IntN(20000) + 1
		py := rng.IntN(20000) + 1
		dpi := float64(rng.IntN(600) + 1)

		got, err := pricing.DeriveSize(px, py, dpi, bound)
		if err != nil {
			t.Fatalf("DeriveSize(%d, %d, %v) error = %v", px, py, dpi, err)
		}

		if got.Width > bound || got.Height > bound {
			t.Fatalf("DeriveSize(%d, %d, %v) = %vx%v, exceeds %v", px, py, dpi, got.Width, got.Height, bound)
		}

		want := float64(px) / float64(py)
		if !approx(got.Width/got.Height, want, 1e-9*want) {
			t.Fatalf("ratio = %v, want %v", got.Width/got.Height, want)
		}
		if !approx(got.AspectRatio, want, tolerance) {
			t.Fatalf("AspectRatio = %v, want %v", got.AspectRatio, want)
		}
	}
}

func TestDeriveSize_ClampsToBoundExactly(t *testing.T) {
	got, err := pricing.DeriveSize(7203, 1000, 96, 24)
	if err != nil {
		t.Fatalf("DeriveSize() error = %v", err)
	}
	if got.Width != 24 {
		t.Errorf("Width = %v, want exactly 24", got.Width)
	}
	if got.Height > 24 {
		t.Errorf("Height = %v, exceeds 24", got.Height)
	}
}

func TestFromPhysical(t *testing.T) {
	got, err := pricing.FromPhysical(30, 15, 24)
	if err != nil {
		t.Fatalf("FromPhysical() error = %v", err)
	}
	if !approx(got.Width, 24, tolerance) || !approx(got.Height, 12, tolerance) {
		t.Errorf("FromPhysical() = %vx%v, want 24x12", got.Width, got.Height)
	}
	if !approx(got.AspectRatio, 2, tolerance) {
		t.Errorf("AspectRatio = %v, want 2", got.AspectRatio)
	}

	if _, err := pricing.FromPhysical(0, 5, 24); !errors.Is(err, pricing.ErrInvalidGeometry) {
		t.Errorf("FromPhysical(0, 5) error = %v, want ErrInvalidGeometry", err)
	}
}

func TestModel(t *testing.T) {
	m := pricing.Model{DPI: 300, MaxInches: 24, UnitPrice: 0.02}

	orig, err := m.FromPixels(3000, 1500)
	if err != nil {
		t.Fatalf("FromPixels() error = %v", err)
	}

	if got := m.Cost(orig.Size(), 2); !approx(got, 2.00, tolerance) {
		t.Errorf("Cost() = %v, want 2.00", got)
	}

	q := m.Quote(orig.Size(), 2)
	if q.RoundedWidth != 10 || q.RoundedHeight != 5 || q.Area != 50 {
		t.Errorf("Quote() = %+v, want 10x5 area 50", q)
	}
}
