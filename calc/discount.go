package calc

import "sort"

const maxPercent = 100

// DiscountStrategy computes the discount amount for one line. gross is
// quantity * unit price, value is the line's declared discount value, and
// quantity is the line quantity (used only by quantity-aware strategies).
// Out-of-range inputs are clamped, never rejected: a discount is always in
// [0, gross].
type DiscountStrategy interface {
	Name() string
	Calculate(gross, value, quantity float64) float64
}

// PercentDiscount applies value as a percentage of gross, clamped to 0..100
// so the discount can neither go negative nor exceed the line amount.
type PercentDiscount struct{}

func (PercentDiscount) Name() string { return "discount_percent" }

func (PercentDiscount) Calculate(gross, value, _ float64) float64 {
	if value < 0 {
		value = 0
	}

	if value > maxPercent {
		value = maxPercent
	}

	return gross * value / maxPercent
}

// AmountDiscount applies value as a fixed amount, clamped to 0..gross.
type AmountDiscount struct{}

func (AmountDiscount) Name() string { return "discount_amount" }

func (AmountDiscount) Calculate(gross, value, _ float64) float64 {
	if value < 0 {
		return 0
	}

	if value > gross {
		return gross
	}

	return value
}

// Tier maps a minimum quantity to a percentage discount for volume pricing.
type Tier struct {
	MinQuantity     float64
	DiscountPercent float64
}

// TieredDiscount selects the highest tier whose MinQuantity the line
// quantity reaches and applies its percentage to gross. A line below every
// tier gets no discount. The declared discount value is ignored; the tiers
// themselves carry the percentages.
type TieredDiscount struct {
	tiers []Tier
}

// NewTieredDiscount creates a tiered strategy. Tiers may be supplied in any
// order; they are sorted descending by MinQuantity so lookup picks the
// highest qualifying tier first.
func NewTieredDiscount(tiers []Tier) TieredDiscount {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinQuantity > sorted[j].MinQuantity
	})

	return TieredDiscount{tiers: sorted}
}

func (TieredDiscount) Name() string { return "discount_tiered" }

func (d TieredDiscount) Calculate(gross, _, quantity float64) float64 {
	for _, tier := range d.tiers {
		if quantity >= tier.MinQuantity {
			return PercentDiscount{}.Calculate(gross, tier.DiscountPercent, quantity)
		}
	}

	return 0
}
