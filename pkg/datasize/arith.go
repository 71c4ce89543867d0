package datasize

import (
	"math"

	"github.com/bytq/bytq/internal/unit"
)

// All arithmetic is pure: every operation returns a new Size and leaves
// the receiver untouched.

// Add returns the sum of the receiver and the parsed operand.
func (s Size) Add(v any) (Size, error) {
	b, err := parse(v)
	if err != nil {
		return Size{}, err
	}
	return Size{bytes: s.bytes + b}, nil
}

// Sub subtracts the parsed operand. Subtracting more than the receiver
// holds violates the non-negative invariant and fails.
func (s Size) Sub(v any) (Size, error) {
	b, err := parse(v)
	if err != nil {
		return Size{}, err
	}
	r, err := unit.Sub(s.bytes, b)
	if err != nil {
		return Size{}, err
	}
	return Size{bytes: r}, nil
}

// Mul scales the size by a plain number; the factor is not a magnitude.
func (s Size) Mul(factor float64) Size {
	return Size{bytes: s.bytes * factor}
}

// Div divides by the parsed operand, failing on a zero divisor.
func (s Size) Div(v any) (Size, error) {
	b, err := parse(v)
	if err != nil {
		return Size{}, err
	}
	r, err := unit.Div(s.bytes, b)
	if err != nil {
		return Size{}, err
	}
	return Size{bytes: r}, nil
}

// Mod returns the remainder, keeping the sign of the dividend. A zero
// operand fails.
func (s Size) Mod(v any) (Size, error) {
	b, err := parse(v)
	if err != nil {
		return Size{}, err
	}
	r, err := unit.Mod(s.bytes, b)
	if err != nil {
		return Size{}, err
	}
	return Size{bytes: r}, nil
}

// Abs returns the absolute magnitude.
func (s Size) Abs() Size {
	return Size{bytes: math.Abs(s.bytes)}
}

// Min reduces the receiver and the operands to the smallest magnitude.
func (s Size) Min(vs ...any) (Size, error) {
	return s.reduce(vs, func(a, b float64) float64 { return math.Min(a, b) })
}

// Max reduces the receiver and the operands to the largest magnitude.
func (s Size) Max(vs ...any) (Size, error) {
	return s.reduce(vs, func(a, b float64) float64 { return math.Max(a, b) })
}

func (s Size) reduce(vs []any, pick func(a, b float64) float64) (Size, error) {
	acc := s.bytes
	for _, v := range vs {
		b, err := parse(v)
		if err != nil {
			return Size{}, err
		}
		acc = pick(acc, b)
	}
	return Size{bytes: acc}, nil
}
