// Package calc derives line-item and document totals from interchangeable
// tax, discount, and rounding strategies. The engine is a pure projection:
// given the same line items and strategies it returns identical results, it
// keeps no state between calls, and it never fails on out-of-range numeric
// input (strategies clamp instead of erroring).
package calc

// TaxStrategy computes the tax amount for a base amount. Strategies are
// stateless values constructed once and shared freely; Name identifies the
// strategy in diagnostics and TaxInfo.
type TaxStrategy interface {
	Name() string
	Rate() float64
	// Inclusive reports whether quoted prices already contain the tax.
	// For an inclusive strategy Calculate extracts the embedded tax rather
	// than adding on top, and the engine keeps line totals at net.
	Inclusive() bool
	Calculate(base float64) float64
}

// ExclusiveTax adds tax on top of the base amount.
type ExclusiveTax struct {
	rate float64
}

// NewExclusiveTax creates an exclusive tax strategy. The rate is a fraction,
// e.g. 0.11 for the Indonesian standard 11% PPN.
func NewExclusiveTax(rate float64) ExclusiveTax {
	return ExclusiveTax{rate: rate}
}

func (t ExclusiveTax) Name() string { return "tax_exclusive" }

func (t ExclusiveTax) Rate() float64 { return t.rate }

func (t ExclusiveTax) Inclusive() bool { return false }

func (t ExclusiveTax) Calculate(base float64) float64 {
	return base * t.rate
}

// InclusiveTax treats the supplied amount as already containing tax and
// extracts the embedded portion: amount - amount/(1+rate).
type InclusiveTax struct {
	rate float64
}

// NewInclusiveTax creates an inclusive tax strategy for the given rate.
func NewInclusiveTax(rate float64) InclusiveTax {
	return InclusiveTax{rate: rate}
}

func (t InclusiveTax) Name() string { return "tax_inclusive" }

func (t InclusiveTax) Rate() float64 { return t.rate }

func (t InclusiveTax) Inclusive() bool { return true }

func (t InclusiveTax) Calculate(amountIncl float64) float64 {
	return amountIncl - amountIncl/(1+t.rate)
}

// ZeroTax is the exempt/zero-rate strategy.
type ZeroTax struct{}

func (ZeroTax) Name() string { return "tax_zero" }

func (ZeroTax) Rate() float64 { return 0 }

func (ZeroTax) Inclusive() bool { return false }

func (ZeroTax) Calculate(_ float64) float64 { return 0 }
