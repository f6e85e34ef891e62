package lineitems

import (
	"errors"

	"github.com/satriyop/enter365-core/calc"
)

// Validation errors, joined per item by Validate.
var (
	ErrQuantityNotPositive = errors.New("quantity must be greater than zero")
	ErrUnitPriceNegative   = errors.New("unit price must not be negative")
	ErrDiscountNegative    = errors.New("discount value must not be negative")
	ErrPercentOverHundred  = errors.New("percent discount must not exceed 100")
	ErrTaxRateOutOfRange   = errors.New("tax rate must be between 0 and 1")
	ErrUnknownDiscountType = errors.New("unknown discount type")
)

// ItemErrors is the validation outcome for one line item.
type ItemErrors struct {
	Index int
	Errs  []error
}

// Validate checks every item and returns one entry per invalid item. A
// fully valid collection yields an empty slice. Validation never blocks
// calculation: the engine clamps what it receives, this reports what a UI
// should surface.
func (s *Store) Validate() []ItemErrors {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []ItemErrors

	for i, item := range s.items {
		if errs := validateItem(item); len(errs) > 0 {
			result = append(result, ItemErrors{Index: i, Errs: errs})
		}
	}

	return result
}

func validateItem(item calc.LineItem) []error {
	var errs []error

	if item.Quantity <= 0 {
		errs = append(errs, ErrQuantityNotPositive)
	}

	if item.UnitPrice < 0 {
		errs = append(errs, ErrUnitPriceNegative)
	}

	if item.DiscountValue < 0 {
		errs = append(errs, ErrDiscountNegative)
	}

	if item.DiscountType == calc.DiscountPercentType && item.DiscountValue > 100 {
		errs = append(errs, ErrPercentOverHundred)
	}

	if item.TaxRate < 0 || item.TaxRate > 1 {
		errs = append(errs, ErrTaxRateOutOfRange)
	}

	switch item.DiscountType {
	case calc.DiscountNone, calc.DiscountPercentType, calc.DiscountAmountType, calc.DiscountTieredType:
	default:
		errs = append(errs, ErrUnknownDiscountType)
	}

	return errs
}
