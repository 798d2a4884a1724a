package orders

import (
	"fmt"
	"slices"
	"sync"

	"github.com/JaimeStill/print-orders/internal/pricing"
	"github.com/google/uuid"
)

// Registry maps generated ids to order items and remembers insertion order,
// which is the order files are submitted in. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Item
	order []uuid.UUID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[uuid.UUID]*Item),
	}
}

// Insert stores a new item sized to size with quantity 1 and no notes.
// Every item carries a file; a nil file returns ErrNoFile.
func (r *Registry) Insert(file File, size pricing.Original) (uuid.UUID, error) {
	if file == nil {
		return uuid.Nil, ErrNoFile
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	for r.items[id] != nil {
		id = uuid.New()
	}

	r.items[id] = &Item{
		ID:       id,
		File:     file,
		Original: size,
		Current:  size.Size(),
		Quantity: 1,
	}
	r.order = append(r.order, id)

	return id, nil
}

// Remove deletes an item, reporting whether it existed.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}

	delete(r.items, id)
	r.order = slices.DeleteFunc(r.order, func(v uuid.UUID) bool { return v == id })
	return true
}

// Get returns a copy of the item.
func (r *Registry) Get(id uuid.UUID) (Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return Item{}, false
	}
	return *item, true
}

// IsEmpty reports whether the registry holds no items.
func (r *Registry) IsEmpty() bool {
	return r.Len() == 0
}

// Len returns the number of items.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Items returns copies of all items in insertion order.
func (r *Registry) Items() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Item, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.items[id])
	}
	return result
}

// SetDimension edits one axis and recomputes the other from the item's
// original aspect ratio. Invalid values leave the item unchanged.
func (r *Registry) SetDimension(id uuid.UUID, axis pricing.Axis, value float64) (Item, error) {
	return r.update(id, func(item *Item) error {
		size, err := pricing.UpdateDimension(item.Original, item.Current, axis, value)
		if err != nil {
			return err
		}
		item.Current = size
		return nil
	})
}

// SetQuantity sets the item quantity. Values below 1 are stored as 1.
func (r *Registry) SetQuantity(id uuid.UUID, quantity int) (Item, error) {
	return r.update(id, func(item *Item) error {
		item.Quantity = max(1, quantity)
		return nil
	})
}

// SetNotes replaces the item's free-text notes.
func (r *Registry) SetNotes(id uuid.UUID, notes string) (Item, error) {
	return r.update(id, func(item *Item) error {
		item.Notes = notes
		return nil
	})
}

// Cost prices a single item.
func (r *Registry) Cost(id uuid.UUID, unitPrice float64) (float64, error) {
	item, ok := r.Get(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return item.Cost(unitPrice), nil
}

// TotalCost sums the cost of every item; zero when empty.
func (r *Registry) TotalCost(unitPrice float64) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, id := range r.order {
		total += r.items[id].Cost(unitPrice)
	}
	return total
}

// Reset removes every item.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.items)
	r.order = nil
}

func (r *Registry) update(id uuid.UUID, fn func(*Item) error) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := fn(item); err != nil {
		return *item, err
	}
	return *item, nil
}
