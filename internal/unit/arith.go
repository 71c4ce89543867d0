package unit

import (
	"math"

	"github.com/bytq/bytq/pkg/errcode"
)

// Sub enforces the non-negative invariant shared by the size and rate
// types: subtracting more than the receiver holds is an error, never a
// clamp.
func Sub(a, v float64) (float64, error) {
	if v > a {
		return 0, errcode.New(errcode.CodeInvariant, "decrement by %v exceeds magnitude %v", v, a)
	}
	return a - v, nil
}

func Div(a, v float64) (float64, error) {
	if v == 0 {
		return 0, errcode.New(errcode.CodeDivideByZero, "divide by zero-valued operand")
	}
	return a / v, nil
}

// Mod keeps the sign of the dividend, per math.Mod.
func Mod(a, v float64) (float64, error) {
	if v == 0 {
		return 0, errcode.New(errcode.CodeDivideByZero, "modulo by zero-valued operand")
	}
	return math.Mod(a, v), nil
}

// Compare returns -1, 0 or 1 from strict numeric comparison of canonical
// magnitudes.
func Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Op is a comparison predicate usable in single- and collection-operand
// forms.
type Op int

const (
	OpEq Op = iota
	OpLt
	OpGt
	OpLe
	OpGe
)

var op2str = map[Op]string{
	OpEq: "==",
	OpLt: "<",
	OpGt: ">",
	OpLe: "<=",
	OpGe: ">=",
}

func (op Op) String() string { return op2str[op] }

// Eval applies the predicate to two canonical magnitudes.
func (op Op) Eval(a, b float64) bool {
	cmp := Compare(a, b)
	switch op {
	case OpEq:
		return cmp == 0
	case OpLt:
		return cmp < 0
	case OpGt:
		return cmp > 0
	case OpLe:
		return cmp <= 0
	default:
		return cmp >= 0
	}
}

// Mode combines per-operand predicate results over a collection.
type Mode int

const (
	// ModeAll requires the predicate to hold for every operand.
	ModeAll Mode = iota
	// ModeAny requires the predicate to hold for at least one operand.
	ModeAny
)

func (m Mode) String() string {
	if m == ModeAny {
		return "any"
	}
	return "all"
}

// Combine folds per-operand results under the mode. The operand list
// must not be empty.
func Combine(m Mode, results []bool) (bool, error) {
	if len(results) == 0 {
		return false, errcode.New(errcode.CodeInvalidArgument, "empty operand list")
	}
	for _, r := range results {
		if m == ModeAny && r {
			return true, nil
		}
		if m == ModeAll && !r {
			return false, nil
		}
	}
	return m == ModeAll, nil
}
