package datarate

import (
	"math"

	"github.com/bytq/bytq/internal/unit"
)

// All arithmetic is pure: every operation returns a new Rate carrying
// the receiver's display preference.

func (r Rate) with(bits float64) Rate {
	return Rate{bits: bits, displayBytes: r.displayBytes}
}

// Add returns the sum of the receiver and the parsed operand.
func (r Rate) Add(v any) (Rate, error) {
	b, err := parse(v)
	if err != nil {
		return Rate{}, err
	}
	return r.with(r.bits + b), nil
}

// Sub subtracts the parsed operand. Subtracting more than the receiver
// holds violates the non-negative invariant and fails.
func (r Rate) Sub(v any) (Rate, error) {
	b, err := parse(v)
	if err != nil {
		return Rate{}, err
	}
	res, err := unit.Sub(r.bits, b)
	if err != nil {
		return Rate{}, err
	}
	return r.with(res), nil
}

// Mul scales the rate by a plain number; the factor is not a magnitude.
func (r Rate) Mul(factor float64) Rate {
	return r.with(r.bits * factor)
}

// Div divides by the parsed operand, failing on a zero divisor.
func (r Rate) Div(v any) (Rate, error) {
	b, err := parse(v)
	if err != nil {
		return Rate{}, err
	}
	res, err := unit.Div(r.bits, b)
	if err != nil {
		return Rate{}, err
	}
	return r.with(res), nil
}

// Mod returns the remainder, keeping the sign of the dividend. A zero
// operand fails.
func (r Rate) Mod(v any) (Rate, error) {
	b, err := parse(v)
	if err != nil {
		return Rate{}, err
	}
	res, err := unit.Mod(r.bits, b)
	if err != nil {
		return Rate{}, err
	}
	return r.with(res), nil
}

// Abs returns the absolute magnitude.
func (r Rate) Abs() Rate {
	return r.with(math.Abs(r.bits))
}

// Min reduces the receiver and the operands to the smallest magnitude.
func (r Rate) Min(vs ...any) (Rate, error) {
	return r.reduce(vs, func(a, b float64) float64 { return math.Min(a, b) })
}

// Max reduces the receiver and the operands to the largest magnitude.
func (r Rate) Max(vs ...any) (Rate, error) {
	return r.reduce(vs, func(a, b float64) float64 { return math.Max(a, b) })
}

func (r Rate) reduce(vs []any, pick func(a, b float64) float64) (Rate, error) {
	acc := r.bits
	for _, v := range vs {
		b, err := parse(v)
		if err != nil {
			return Rate{}, err
		}
		acc = pick(acc, b)
	}
	return r.with(acc), nil
}
