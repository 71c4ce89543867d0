package unit

import (
	"math"
	"strconv"
)

// NoRounding disables precision rounding in FormatOpts.
const NoRounding = -1

type FormatOpts struct {
	// Decimal places to round to, or NoRounding to keep the full value.
	Precision int
	// Placed between the number and the unit symbol.
	Delimiter string
}

// DefaultFormatOpts matches the humanize defaults: two decimals, space
// delimited.
func DefaultFormatOpts() FormatOpts {
	return FormatOpts{Precision: 2, Delimiter: " "}
}

// Humanize renders a canonical magnitude with the largest unit of the
// table for which the value is at least 1. Magnitudes below 1 in every
// unit, including zero, fall back to the table's base unit.
func Humanize(v float64, specs []Spec, opts FormatOpts) string {
	spec := specs[0]
	for i := len(specs) - 1; i > 0; i-- {
		if math.Abs(v)/specs[i].Scale() >= 1 {
			spec = specs[i]
			break
		}
	}
	return Format(v/spec.Scale(), spec.Symbol, opts)
}

// Format renders an already-converted value against a unit symbol.
func Format(v float64, symbol string, opts FormatOpts) string {
	return FormatValue(v, opts.Precision) + opts.Delimiter + symbol
}

// FormatValue renders a number rounded to the given precision with
// trailing zeros trimmed, so 1.5 stays "1.5" rather than "1.50".
func FormatValue(v float64, precision int) string {
	return strconv.FormatFloat(Round(v, precision), 'f', -1, 64)
}

// Round rounds half away from zero to the given number of decimals.
// A negative precision leaves the value untouched.
func Round(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	pow := math.Pow(10, float64(precision))
	return math.Round(v*pow) / pow
}
