// Package datasize provides Size, an immutable digital storage quantity
// with base-1024 units from B through YB. A Size always stores its
// canonical magnitude in bytes; conversions are computed, never stored.
//
// Operations accept Size values, raw numbers (taken as bytes) and
// human-readable strings ("1.5 kB") interchangeably.
package datasize

import (
	"github.com/bytq/bytq/internal/unit"
	"github.com/bytq/bytq/pkg/errcode"
)

type Size struct {
	bytes float64
}

// New builds a Size from another Size, a number of bytes, or a
// human-readable string such as "1.5 kB".
func New(v any) (Size, error) {
	b, err := parse(v)
	if err != nil {
		return Size{}, err
	}
	return Size{bytes: b}, nil
}

// MustNew is New for statically known inputs; it panics on error.
func MustNew(v any) Size {
	s, err := New(v)
	if err != nil {
		panic(err)
	}
	return s
}

// FromUnit builds a Size from a value expressed in the given unit.
func FromUnit(n float64, symbol string) (Size, error) {
	spec, ok := unit.LookupSize(symbol)
	if !ok {
		return Size{}, errcode.New(errcode.CodeUnknownUnit, "%q", symbol)
	}
	return Size{bytes: n * spec.Scale()}, nil
}

// FromHumanReadable parses a string like "1.5 GB" into a Size.
func FromHumanReadable(s string) (Size, error) {
	b, err := unit.ParseSize(s)
	if err != nil {
		return Size{}, err
	}
	return Size{bytes: b}, nil
}

// FromBits builds a Size from a bit count.
func FromBits(n float64) Size {
	return Size{bytes: n / unit.BitsPerByte}
}

// parse normalizes any supported operand into canonical bytes.
func parse(v any) (float64, error) {
	switch x := v.(type) {
	case Size:
		return x.bytes, nil
	case *Size:
		if x == nil {
			return 0, errcode.New(errcode.CodeParse, "nil size operand")
		}
		return x.bytes, nil
	case string:
		return unit.ParseSize(x)
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, errcode.New(errcode.CodeParse, "unsupported size operand type %T", v)
	}
}

// Bytes returns the canonical magnitude.
func (s Size) Bytes() float64 { return s.bytes }

// Bits returns the magnitude as a bit count.
func (s Size) Bits() float64 { return s.bytes * unit.BitsPerByte }

func (s Size) Kilobytes() float64 { return s.inUnit("kB") }
func (s Size) Megabytes() float64 { return s.inUnit("MB") }
func (s Size) Gigabytes() float64 { return s.inUnit("GB") }
func (s Size) Terabytes() float64 { return s.inUnit("TB") }
func (s Size) Petabytes() float64 { return s.inUnit("PB") }
func (s Size) Exabytes() float64  { return s.inUnit("EB") }
func (s Size) Zettabytes() float64 { return s.inUnit("ZB") }
func (s Size) Yottabytes() float64 { return s.inUnit("YB") }

func (s Size) inUnit(symbol string) float64 {
	v, _ := unit.Convert(s.bytes, symbol, unit.FamilySize)
	return v
}

// Value expresses the size in the given unit, rounded to precision
// decimals. Pass a negative precision to keep the full value.
func (s Size) Value(symbol string, precision int) (float64, error) {
	v, err := unit.Convert(s.bytes, symbol, unit.FamilySize)
	if err != nil {
		return 0, err
	}
	return unit.Round(v, precision), nil
}

// FormatOption adjusts precision and delimiter for To and Humanize.
type FormatOption func(*unit.FormatOpts)

func WithPrecision(p int) FormatOption {
	return func(o *unit.FormatOpts) { o.Precision = p }
}

func WithDelimiter(d string) FormatOption {
	return func(o *unit.FormatOpts) { o.Delimiter = d }
}

func WithoutRounding() FormatOption {
	return func(o *unit.FormatOpts) { o.Precision = unit.NoRounding }
}

func formatOpts(opts []FormatOption) unit.FormatOpts {
	o := unit.DefaultFormatOpts()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// To renders the size in the given unit.
func (s Size) To(symbol string, opts ...FormatOption) (string, error) {
	spec, ok := unit.LookupSize(symbol)
	if !ok {
		return "", errcode.New(errcode.CodeUnknownUnit, "%q", symbol)
	}
	return unit.Format(s.bytes/spec.Scale(), spec.Symbol, formatOpts(opts)), nil
}

// Humanize renders the size with the largest unit whose value is at
// least 1, defaulting to two decimals and a space delimiter.
func (s Size) Humanize(opts ...FormatOption) string {
	return unit.Humanize(s.bytes, unit.SizeSpecs(), formatOpts(opts))
}

func (s Size) String() string { return s.Humanize() }
