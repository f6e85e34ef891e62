// Package lineitems maintains the ordered collection of line items behind a
// document form: CRUD with minimum/maximum count constraints, reordering,
// duplication, and per-index validation. The store owns the collection; the
// calculation engine reads snapshots of it and never mutates it.
package lineitems

import (
	"errors"
	"fmt"
	"sync"

	"github.com/satriyop/enter365-core/calc"
)

// Store errors.
var (
	ErrIndexOutOfRange = errors.New("line item index out of range")
	ErrMinItems        = errors.New("cannot remove below minimum item count")
	ErrMaxItems        = errors.New("cannot add beyond maximum item count")
)

// Store is an ordered, bounds-checked collection of line items. All
// operations are safe for concurrent use; reads return copies so callers
// can never alias the internal slice.
type Store struct {
	mu       sync.RWMutex
	items    []calc.LineItem
	minItems int
	maxItems int
	defaults calc.LineItem
}

// Option configures a Store.
type Option func(*Store)

// WithMinItems sets the minimum item count Remove and SetItems enforce.
func WithMinItems(n int) Option {
	return func(s *Store) {
		s.minItems = n
	}
}

// WithMaxItems sets the maximum item count. Zero means unbounded.
func WithMaxItems(n int) Option {
	return func(s *Store) {
		s.maxItems = n
	}
}

// WithDefaults sets the template merged into items added with zero quantity,
// e.g. quantity 1 for a fresh row.
func WithDefaults(defaults calc.LineItem) Option {
	return func(s *Store) {
		s.defaults = defaults
	}
}

// New creates an empty store. The stock configuration has no minimum, no
// maximum, and a default quantity of 1 for new rows.
func New(opts ...Option) *Store {
	store := &Store{
		defaults: calc.LineItem{Quantity: 1},
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Add appends an item and returns its index. A zero quantity is filled from
// the configured defaults.
func (s *Store) Add(item calc.LineItem) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxItems > 0 && len(s.items) >= s.maxItems {
		return 0, fmt.Errorf("%w: max %d", ErrMaxItems, s.maxItems)
	}

	if item.Quantity == 0 {
		item.Quantity = s.defaults.Quantity
	}

	s.items = append(s.items, item)

	return len(s.items) - 1, nil
}

// Remove deletes the item at index, refusing to go below the configured
// minimum count.
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	if len(s.items) <= s.minItems {
		return fmt.Errorf("%w: min %d", ErrMinItems, s.minItems)
	}

	s.items = append(s.items[:index], s.items[index+1:]...)

	return nil
}

// Patch carries partial updates for one line item. Nil fields are left
// unchanged.
type Patch struct {
	ProductID     *string
	Description   *string
	Quantity      *float64
	UnitPrice     *float64
	DiscountType  *calc.DiscountType
	DiscountValue *float64
	TaxRate       *float64
}

// Update applies a patch to the item at index.
func (s *Store) Update(index int, patch Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	item := &s.items[index]

	if patch.ProductID != nil {
		item.ProductID = *patch.ProductID
	}

	if patch.Description != nil {
		item.Description = *patch.Description
	}

	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}

	if patch.UnitPrice != nil {
		item.UnitPrice = *patch.UnitPrice
	}

	if patch.DiscountType != nil {
		item.DiscountType = *patch.DiscountType
	}

	if patch.DiscountValue != nil {
		item.DiscountValue = *patch.DiscountValue
	}

	if patch.TaxRate != nil {
		item.TaxRate = *patch.TaxRate
	}

	return nil
}

// Move relocates the item at from so it ends up at index to, shifting the
// items in between.
func (s *Store) Move(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if from < 0 || from >= len(s.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, from)
	}

	if to < 0 || to >= len(s.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, to)
	}

	if from == to {
		return nil
	}

	item := s.items[from]
	s.items = append(s.items[:from], s.items[from+1:]...)

	rest := append([]calc.LineItem{item}, s.items[to:]...)
	s.items = append(s.items[:to], rest...)

	return nil
}

// Duplicate copies the item at index, inserts the copy directly after it,
// and returns the copy's index.
func (s *Store) Duplicate(index int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	if s.maxItems > 0 && len(s.items) >= s.maxItems {
		return 0, fmt.Errorf("%w: max %d", ErrMaxItems, s.maxItems)
	}

	copyOf := s.items[index]

	rest := append([]calc.LineItem{copyOf}, s.items[index+1:]...)
	s.items = append(s.items[:index+1], rest...)

	return index + 1, nil
}

// Clear removes all items regardless of the minimum bound; a cleared form
// starts over.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

// SetItems replaces the whole collection, subject to the maximum bound.
func (s *Store) SetItems(items []calc.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxItems > 0 && len(items) > s.maxItems {
		return fmt.Errorf("%w: max %d", ErrMaxItems, s.maxItems)
	}

	s.items = make([]calc.LineItem, len(items))
	copy(s.items, items)

	return nil
}

// Get returns the item at index.
func (s *Store) Get(index int) (calc.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.items) {
		return calc.LineItem{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	return s.items[index], nil
}

// FindByProductID returns the indexes of every item with the given product,
// in order.
func (s *Store) FindByProductID(productID string) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var indexes []int

	for i, item := range s.items {
		if item.ProductID == productID {
			indexes = append(indexes, i)
		}
	}

	return indexes
}

// Items returns a copy of the current collection, in order.
func (s *Store) Items() []calc.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]calc.LineItem, len(s.items))
	copy(items, s.items)

	return items
}

// Len returns the current item count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// CanAdd reports whether Add would succeed under the maximum bound.
func (s *Store) CanAdd() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.maxItems == 0 || len(s.items) < s.maxItems
}

// CanRemove reports whether Remove would succeed under the minimum bound.
func (s *Store) CanRemove() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items) > s.minItems
}

// HasItems reports whether the collection is non-empty.
func (s *Store) HasItems() bool {
	return s.Len() > 0
}
