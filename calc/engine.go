package calc

// DiscountType selects which registered discount strategy applies to a line.
type DiscountType string

const (
	// DiscountNone is the zero value: the line carries no discount.
	DiscountNone DiscountType = ""
	// DiscountPercentType applies the line's discount value as a percentage.
	DiscountPercentType DiscountType = "percent"
	// DiscountAmountType applies the line's discount value as a fixed amount.
	DiscountAmountType DiscountType = "amount"
	// DiscountTieredType applies a quantity tier table configured on the engine.
	DiscountTieredType DiscountType = "tiered"
)

// LineItem is one row of a financial document. Quantity and UnitPrice are
// non-negative by convention; enforcement lives in the line item store, not
// here, so the engine always produces a best-effort result.
type LineItem struct {
	ProductID     string
	Description   string
	Quantity      float64
	UnitPrice     float64
	DiscountType  DiscountType
	DiscountValue float64
	TaxRate       float64
}

// LineCalculation is the derived money breakdown for one line. It is a pure
// function's output, recomputed whenever inputs change and never mutated in
// place.
type LineCalculation struct {
	Gross    float64
	Discount float64
	Net      float64
	Tax      float64
	Total    float64
}

// DocumentTotals aggregates all line calculations, with the rounding
// strategy applied once to the grand total.
type DocumentTotals struct {
	Subtotal      float64
	TotalDiscount float64
	TaxableAmount float64
	Tax           float64
	GrandTotal    float64
}

// TaxInfo describes the active tax strategy for display beside totals.
type TaxInfo struct {
	Name      string
	Rate      float64
	Inclusive bool
}

// DefaultTaxRate is the Indonesian standard PPN rate.
const DefaultTaxRate = 0.11

// Engine combines one tax strategy, a discount strategy per discount type,
// and one rounding strategy. Strategies arrive by injection: there are no
// package-level registries, so independent engines (per tenant, per document
// type) can carry independent configurations.
type Engine struct {
	tax       TaxStrategy
	discounts map[DiscountType]DiscountStrategy
	rounding  RoundingStrategy
	precision int
}

// Option configures an Engine.
type Option func(*Engine)

// WithTaxStrategy replaces the default exclusive 11% strategy.
func WithTaxStrategy(tax TaxStrategy) Option {
	return func(e *Engine) {
		e.tax = tax
	}
}

// WithDiscountStrategy registers or replaces the strategy for one discount
// type.
func WithDiscountStrategy(kind DiscountType, strategy DiscountStrategy) Option {
	return func(e *Engine) {
		e.discounts[kind] = strategy
	}
}

// WithRounding replaces the default standard rounding.
func WithRounding(rounding RoundingStrategy) Option {
	return func(e *Engine) {
		e.rounding = rounding
	}
}

// WithPrecision sets the decimal precision handed to the rounding strategy.
// The default is 0 (whole currency units).
func WithPrecision(precision int) Option {
	return func(e *Engine) {
		e.precision = precision
	}
}

// NewEngine creates an engine with exclusive 11% tax, percent/amount/tiered
// discount strategies (tiered with an empty tier table), and standard
// rounding at precision 0, then applies the options.
func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		tax: NewExclusiveTax(DefaultTaxRate),
		discounts: map[DiscountType]DiscountStrategy{
			DiscountPercentType: PercentDiscount{},
			DiscountAmountType:  AmountDiscount{},
			DiscountTieredType:  NewTieredDiscount(nil),
		},
		rounding:  StandardRounding{},
		precision: 0,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// CalculateLine derives the money breakdown for one line:
//
//	gross    = quantity * unit price
//	discount = discount strategy over gross (0 when no type is set)
//	net      = gross - discount
//	tax      = tax strategy over net
//	total    = net + tax, or net alone for inclusive tax (the extracted
//	           tax is informational, already contained in net)
//
// An unknown discount type degrades to no discount.
func (e *Engine) CalculateLine(item LineItem) LineCalculation {
	gross := item.Quantity * item.UnitPrice

	var discount float64

	if item.DiscountType != DiscountNone {
		if strategy, ok := e.discounts[item.DiscountType]; ok {
			discount = strategy.Calculate(gross, item.DiscountValue, item.Quantity)
		}
	}

	net := gross - discount
	tax := e.tax.Calculate(net)

	total := net + tax
	if e.tax.Inclusive() {
		total = net
	}

	return LineCalculation{
		Gross:    gross,
		Discount: discount,
		Net:      net,
		Tax:      tax,
		Total:    total,
	}
}

// CalculateDocument sums the per-line breakdowns and rounds once at the
// document level. Rounding each line individually would let remainder drift
// accumulate across lines, so only the grand total passes through the
// rounding strategy.
func (e *Engine) CalculateDocument(items []LineItem) DocumentTotals {
	var totals DocumentTotals

	for _, item := range items {
		line := e.CalculateLine(item)

		totals.Subtotal += line.Net
		totals.TotalDiscount += line.Discount
		totals.TaxableAmount += line.Net
		totals.Tax += line.Tax
		totals.GrandTotal += line.Total
	}

	totals.GrandTotal = e.rounding.Round(totals.GrandTotal, e.precision)

	return totals
}

// TaxInfo reports the active tax strategy.
func (e *Engine) TaxInfo() TaxInfo {
	return TaxInfo{
		Name:      e.tax.Name(),
		Rate:      e.tax.Rate(),
		Inclusive: e.tax.Inclusive(),
	}
}
