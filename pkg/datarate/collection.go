package datarate

import (
	"github.com/bytq/bytq/pkg/errcode"
)

// RangeOf yields every rate from start to end inclusive, stepping by
// step. End below start or a non-positive step is an error.
func RangeOf(start, end, step any) ([]Rate, error) {
	lo, err := parse(start)
	if err != nil {
		return nil, err
	}
	hi, err := parse(end)
	if err != nil {
		return nil, err
	}
	st, err := parse(step)
	if err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, errcode.New(errcode.CodeInvalidArgument, "range end %v is less than start %v", hi, lo)
	}
	if st <= 0 {
		return nil, errcode.New(errcode.CodeInvalidArgument, "range step must be positive, got %v", st)
	}

	var out []Rate
	for i := 0; ; i++ {
		v := lo + float64(i)*st
		if v > hi {
			break
		}
		out = append(out, Rate{bits: v})
	}
	return out, nil
}

// Sum adds all operands; the empty sum is zero.
func Sum(vs ...any) (Rate, error) {
	acc := Rate{}
	for _, v := range vs {
		var err error
		if acc, err = acc.Add(v); err != nil {
			return Rate{}, err
		}
	}
	return acc, nil
}

// Average returns the arithmetic mean; empty input is an error.
func Average(vs ...any) (Rate, error) {
	if len(vs) == 0 {
		return Rate{}, errcode.New(errcode.CodeInvalidArgument, "average of empty collection")
	}
	total, err := Sum(vs...)
	if err != nil {
		return Rate{}, err
	}
	return total.Mul(1 / float64(len(vs))), nil
}

// Maximum returns the largest operand; empty input is an error.
func Maximum(vs ...any) (Rate, error) {
	return extreme(vs, "maximum", func(r Rate, rest []any) (Rate, error) { return r.Max(rest...) })
}

// Minimum returns the smallest operand; empty input is an error.
func Minimum(vs ...any) (Rate, error) {
	return extreme(vs, "minimum", func(r Rate, rest []any) (Rate, error) { return r.Min(rest...) })
}

func extreme(vs []any, name string, pick func(Rate, []any) (Rate, error)) (Rate, error) {
	if len(vs) == 0 {
		return Rate{}, errcode.New(errcode.CodeInvalidArgument, "%s of empty collection", name)
	}
	first, err := New(vs[0])
	if err != nil {
		return Rate{}, err
	}
	return pick(first, vs[1:])
}
