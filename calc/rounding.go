package calc

import "math"

// RoundingStrategy rounds a monetary value at a decimal precision. Unit
// strategies (nearest 100, nearest 1000) ignore the precision argument.
type RoundingStrategy interface {
	Name() string
	Round(value float64, precision int) float64
}

// StandardRounding rounds half away from zero at the given precision.
type StandardRounding struct{}

func (StandardRounding) Name() string { return "round_standard" }

func (StandardRounding) Round(value float64, precision int) float64 {
	shift := math.Pow(10, float64(precision))

	return math.Round(value*shift) / shift
}

// CeilRounding always rounds up (toward positive infinity) at the given
// precision.
type CeilRounding struct{}

func (CeilRounding) Name() string { return "round_up" }

func (CeilRounding) Round(value float64, precision int) float64 {
	shift := math.Pow(10, float64(precision))

	return math.Ceil(value*shift) / shift
}

// UnitRounding rounds to the nearest fixed denomination, e.g. the nearest
// 100 or 1000 rupiah. The quotient is rounded half away from zero, so
// 123450 with unit 100 becomes 123500 and 123449 becomes 123400.
type UnitRounding struct {
	unit float64
}

// NewUnitRounding creates a unit rounding strategy. A non-positive unit
// degrades to standard rounding at precision 0.
func NewUnitRounding(unit float64) UnitRounding {
	return UnitRounding{unit: unit}
}

func (UnitRounding) Name() string { return "round_unit" }

func (r UnitRounding) Round(value float64, _ int) float64 {
	if r.unit <= 0 {
		return StandardRounding{}.Round(value, 0)
	}

	return math.Round(value/r.unit) * r.unit
}
