package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestFormatterIDR(t *testing.T) {
	t.Parallel()

	formatter := NewIDRFormatter()

	formatted := formatter.Format(1_500_000)
	assert.Contains(t, formatted, "Rp")
	assert.NotContains(t, formatted, "IDR", "narrow symbol, not the ISO code")
}

func TestFormatterOtherLocale(t *testing.T) {
	t.Parallel()

	formatter := NewFormatter(language.AmericanEnglish, currency.USD)

	formatted := formatter.Format(1_500_000)
	assert.Contains(t, formatted, "$")
}

func TestFormatTotals(t *testing.T) {
	t.Parallel()

	formatter := NewIDRFormatter()

	rows := formatter.FormatTotals(DocumentTotals{
		Subtotal:      1_000_000,
		TotalDiscount: 50_000,
		Tax:           104_500,
		GrandTotal:    1_054_500,
	})

	require.Len(t, rows, 4)
	assert.Equal(t, "Subtotal", rows[0].Label)
	assert.Equal(t, "Discount", rows[1].Label)
	assert.Equal(t, "Tax", rows[2].Label)
	assert.Equal(t, "Grand Total", rows[3].Label)

	for _, row := range rows {
		assert.NotEmpty(t, row.Value)
	}
}
