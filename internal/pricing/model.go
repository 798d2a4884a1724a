package pricing

// Model binds the configured pricing constants.
type Model struct {
	DPI       float64
	MaxInches float64
	UnitPrice float64
}

// FromPixels derives an item's original size from pixel dimensions.
func (m Model) FromPixels(width, height int) (Original, error) {
	return DeriveSize(width, height, m.DPI, m.MaxInches)
}

// FromInches derives an item's original size from physical dimensions.
func (m Model) FromInches(width, height float64) (Original, error) {
	return FromPhysical(width, height, m.MaxInches)
}

// Cost prices size at quantity.
func (m Model) Cost(size Size, quantity int) float64 {
	return ComputeCost(size.Width, size.Height, quantity, m.UnitPrice)
}

// Quote prices size at quantity and returns the breakdown.
func (m Model) Quote(size Size, quantity int) Quote {
	return Explain(size.Width, size.Height, quantity, m.UnitPrice)
}
