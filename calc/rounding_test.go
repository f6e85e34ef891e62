package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardRounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value     float64
		precision int
		want      float64
	}{
		{1234.4, 0, 1234},
		{1234.5, 0, 1235}, // half away from zero
		{-1234.5, 0, -1235},
		{1.005, 2, 1.0}, // binary representation of 1.005 sits just below half
		{1.015, 2, 1.01},
		{99.999, 2, 100},
	}

	for _, tt := range tests {
		got := StandardRounding{}.Round(tt.value, tt.precision)
		assert.InDelta(t, tt.want, got, delta, "round(%v, %d)", tt.value, tt.precision)
	}
}

func TestCeilRounding(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1235.0, CeilRounding{}.Round(1234.01, 0), delta)
	assert.InDelta(t, 1234.0, CeilRounding{}.Round(1234.0, 0), delta)
	assert.InDelta(t, 1.24, CeilRounding{}.Round(1.231, 2), delta)
}

func TestUnitRounding(t *testing.T) {
	t.Parallel()

	nearest100 := NewUnitRounding(100)

	assert.InDelta(t, 123_500.0, nearest100.Round(123_450, 0), delta)
	assert.InDelta(t, 123_400.0, nearest100.Round(123_449, 0), delta)

	nearest1000 := NewUnitRounding(1000)
	assert.InDelta(t, 123_000.0, nearest1000.Round(123_450, 0), delta)

	// Precision is ignored for unit rounding.
	assert.InDelta(t, 123_500.0, nearest100.Round(123_450, 2), delta)

	// Degenerate unit falls back to standard whole-unit rounding.
	assert.InDelta(t, 1235.0, NewUnitRounding(0).Round(1234.6, 0), delta)
	assert.InDelta(t, 1235.0, NewUnitRounding(-5).Round(1234.6, 0), delta)
}

func TestRoundingNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "round_standard", StandardRounding{}.Name())
	assert.Equal(t, "round_up", CeilRounding{}.Name())
	assert.Equal(t, "round_unit", NewUnitRounding(100).Name())
}
