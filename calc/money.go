package calc

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders monetary values for diagnostics and document previews,
// with locale-aware digit grouping and a currency symbol.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter creates a formatter for the given locale and currency.
func NewFormatter(tag language.Tag, unit currency.Unit) Formatter {
	return Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// NewIDRFormatter creates the formatter used by the stock document
// templates: Indonesian locale, rupiah.
func NewIDRFormatter() Formatter {
	return NewFormatter(language.Indonesian, currency.IDR)
}

// Format renders one amount, e.g. "Rp 1.500.000".
func (f Formatter) Format(value float64) string {
	return f.printer.Sprint(currency.NarrowSymbol(f.unit.Amount(value)))
}

// FormatTotals renders a document summary as label/value pairs in display
// order, ready for a totals footer.
func (f Formatter) FormatTotals(totals DocumentTotals) []FormattedAmount {
	return []FormattedAmount{
		{Label: "Subtotal", Value: f.Format(totals.Subtotal)},
		{Label: "Discount", Value: f.Format(totals.TotalDiscount)},
		{Label: "Tax", Value: f.Format(totals.Tax)},
		{Label: "Grand Total", Value: f.Format(totals.GrandTotal)},
	}
}

// FormattedAmount is one row of a rendered totals summary.
type FormattedAmount struct {
	Label string
	Value string
}
