package datarate

import (
	"github.com/bytq/bytq/internal/unit"
)

// Op and Mode select the predicate and the combination rule for the
// collection-operand comparison forms.
type (
	Op   = unit.Op
	Mode = unit.Mode
)

const (
	OpEq = unit.OpEq
	OpLt = unit.OpLt
	OpGt = unit.OpGt
	OpLe = unit.OpLe
	OpGe = unit.OpGe

	ModeAll = unit.ModeAll
	ModeAny = unit.ModeAny
)

// Compare returns -1, 0 or 1 from strict comparison of canonical
// bits-per-second magnitudes; 1 MBps and 8 Mbps compare equal.
func (r Rate) Compare(v any) (int, error) {
	b, err := parse(v)
	if err != nil {
		return 0, err
	}
	return unit.Compare(r.bits, b), nil
}

func (r Rate) Equal(v any) (bool, error)          { return r.is(unit.OpEq, v) }
func (r Rate) Less(v any) (bool, error)           { return r.is(unit.OpLt, v) }
func (r Rate) Greater(v any) (bool, error)        { return r.is(unit.OpGt, v) }
func (r Rate) LessOrEqual(v any) (bool, error)    { return r.is(unit.OpLe, v) }
func (r Rate) GreaterOrEqual(v any) (bool, error) { return r.is(unit.OpGe, v) }

func (r Rate) is(op Op, v any) (bool, error) {
	b, err := parse(v)
	if err != nil {
		return false, err
	}
	return op.Eval(r.bits, b), nil
}

// All reports whether the predicate holds against every operand.
func (r Rate) All(op Op, vs ...any) (bool, error) {
	return r.combine(op, ModeAll, vs)
}

// Any reports whether the predicate holds against at least one operand.
func (r Rate) Any(op Op, vs ...any) (bool, error) {
	return r.combine(op, ModeAny, vs)
}

func (r Rate) combine(op Op, mode Mode, vs []any) (bool, error) {
	results := make([]bool, 0, len(vs))
	for _, v := range vs {
		b, err := parse(v)
		if err != nil {
			return false, err
		}
		results = append(results, op.Eval(r.bits, b))
	}
	return unit.Combine(mode, results)
}

// Between reports whether the receiver lies in [lo, hi], inclusive on
// both ends.
func (r Rate) Between(lo, hi any) (bool, error) {
	l, err := parse(lo)
	if err != nil {
		return false, err
	}
	h, err := parse(hi)
	if err != nil {
		return false, err
	}
	return r.bits >= l && r.bits <= h, nil
}

// Range is one inclusive [Min, Max] pair for InRanges.
type Range struct {
	Min any
	Max any
}

// InRanges evaluates Between against every range and combines the
// results under the mode.
func (r Rate) InRanges(mode Mode, ranges ...Range) (bool, error) {
	results := make([]bool, 0, len(ranges))
	for _, rg := range ranges {
		ok, err := r.Between(rg.Min, rg.Max)
		if err != nil {
			return false, err
		}
		results = append(results, ok)
	}
	return unit.Combine(mode, results)
}
