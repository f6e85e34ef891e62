package lineitems

import (
	"fmt"

	"github.com/satriyop/enter365-core/calc"
)

// Form composes a store with a calculation engine: the read side a document
// form renders from. Every accessor recomputes from the current items, so a
// Form is always consistent with its store and carries no cached state.
type Form struct {
	store  *Store
	engine *calc.Engine
}

// NewForm combines a store and an engine. Both are shared, not copied:
// mutations through the store are visible on the next Form read.
func NewForm(store *Store, engine *calc.Engine) *Form {
	return &Form{store: store, engine: engine}
}

// Store returns the underlying item store for mutation.
func (f *Form) Store() *Store {
	return f.store
}

// Totals computes the document totals over the current items.
func (f *Form) Totals() calc.DocumentTotals {
	return f.engine.CalculateDocument(f.store.Items())
}

// LineCalculations computes the per-line breakdown for every item, in order.
func (f *Form) LineCalculations() []calc.LineCalculation {
	items := f.store.Items()

	lines := make([]calc.LineCalculation, len(items))
	for i, item := range items {
		lines[i] = f.engine.CalculateLine(item)
	}

	return lines
}

// LineCalculation computes the breakdown for the item at index.
func (f *Form) LineCalculation(index int) (calc.LineCalculation, error) {
	item, err := f.store.Get(index)
	if err != nil {
		return calc.LineCalculation{}, fmt.Errorf("calculate line: %w", err)
	}

	return f.engine.CalculateLine(item), nil
}

// TaxInfo reports the engine's active tax strategy for display.
func (f *Form) TaxInfo() calc.TaxInfo {
	return f.engine.TaxInfo()
}
