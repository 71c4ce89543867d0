package datasize

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

// Compare returns -1, 0 or 1 from strict comparison of canonical byte
// magnitudes; equal magnitudes compare equal regardless of the unit
// either side was constructed from.
func (s Size) Compare(v any) (int, error) {
	b, err := parse(v)
	if err != nil {
		return 0, err
	}
	return unit.Compare(s.bytes, b), nil
}

func (s Size) Equal(v any) (bool, error)          { return s.is(unit.OpEq, v) }
func (s Size) Less(v any) (bool, error)           { return s.is(unit.OpLt, v) }
func (s Size) Greater(v any) (bool, error)        { return s.is(unit.OpGt, v) }
func (s Size) LessOrEqual(v any) (bool, error)    { return s.is(unit.OpLe, v) }
func (s Size) GreaterOrEqual(v any) (bool, error) { return s.is(unit.OpGe, v) }

func (s Size) is(op Op, v any) (bool, error) {
	b, err := parse(v)
	if err != nil {
		return false, err
	}
	return op.Eval(s.bytes, b), nil
}

// All reports whether the predicate holds against every operand.
func (s Size) All(op Op, vs ...any) (bool, error) {
	return s.combine(op, ModeAll, vs)
}

// Any reports whether the predicate holds against at least one operand.
func (s Size) Any(op Op, vs ...any) (bool, error) {
	return s.combine(op, ModeAny, vs)
}

func (s Size) combine(op Op, mode Mode, vs []any) (bool, error) {
	results := make([]bool, 0, len(vs))
	for _, v := range vs {
		b, err := parse(v)
		if err != nil {
			return false, err
		}
		results = append(results, op.Eval(s.bytes, b))
	}
	return unit.Combine(mode, results)
}

// Between reports whether the receiver lies in [lo, hi], inclusive on
// both ends.
func (s Size) Between(lo, hi any) (bool, error) {
	l, err := parse(lo)
	if err != nil {
		return false, err
	}
	h, err := parse(hi)
	if err != nil {
		return false, err
	}
	return s.bytes >= l && s.bytes <= h, nil
}

// Range is one inclusive [Min, Max] pair for InRanges.
type Range struct {
	Min any
	Max any
}

// InRanges evaluates Between against every range and combines the
// results under the mode.
func (s Size) InRanges(mode Mode, ranges ...Range) (bool, error) {
	results := make([]bool, 0, len(ranges))
	for _, r := range ranges {
		ok, err := s.Between(r.Min, r.Max)
		if err != nil {
			return false, err
		}
		results = append(results, ok)
	}
	return unit.Combine(mode, results)
}
