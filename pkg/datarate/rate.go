// Package datarate provides Rate, an immutable data-transfer rate with
// base-1000 units in two sub-families: bits per second (bps..Ybps) and
// bytes per second (Bps..YBps), the byte family being exactly 8x the
// bit family at the same exponent. A Rate always stores its canonical
// magnitude in bits per second.
//
// Operations accept Rate values, raw numbers and human-readable strings
// ("100 Mbps", "12.5 MBps") interchangeably.
package datarate

import (
	"github.com/bytq/bytq/internal/unit"
	"github.com/bytq/bytq/pkg/errcode"
)

type Rate struct {
	bits float64
	// Display preference only; never part of the canonical magnitude.
	displayBytes bool
}

type config struct {
	byteValue   bool
	displaySet  bool
	displayByte bool
}

// Option adjusts how numeric input is interpreted and how the rate
// renders by default.
type Option func(*config)

// WithByteValue makes a numeric constructor argument count bytes per
// second instead of bits per second. String inputs carry their own unit
// and are unaffected.
func WithByteValue() Option {
	return func(c *config) { c.byteValue = true }
}

// WithByteDisplay renders the rate in the byte family (kBps, MBps, ...)
// when no explicit family is requested.
func WithByteDisplay() Option {
	return func(c *config) { c.displaySet, c.displayByte = true, true }
}

// WithBitDisplay restores the default bit-family rendering.
func WithBitDisplay() Option {
	return func(c *config) { c.displaySet, c.displayByte = true, false }
}

// New builds a Rate from another Rate, a number of bits per second, or a
// human-readable string such as "100 Mbps". A string's unit family sets
// the display preference unless an explicit display option overrides it.
func New(v any, opts ...Option) (Rate, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	r := Rate{}
	switch x := v.(type) {
	case Rate:
		r = x
	case *Rate:
		if x == nil {
			return Rate{}, errcode.New(errcode.CodeParse, "nil rate operand")
		}
		r = *x
	case string:
		var err error
		if r, err = FromHumanReadable(x); err != nil {
			return Rate{}, err
		}
	default:
		b, err := parse(v)
		if err != nil {
			return Rate{}, err
		}
		if cfg.byteValue {
			b *= unit.BitsPerByte
		}
		r = Rate{bits: b}
	}

	if cfg.displaySet {
		r.displayBytes = cfg.displayByte
	}
	return r, nil
}

// MustNew is New for statically known inputs; it panics on error.
func MustNew(v any, opts ...Option) Rate {
	r, err := New(v, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// FromUnit builds a Rate from a value in the given unit. Byte-family
// symbols set the byte display preference.
func FromUnit(n float64, symbol string) (Rate, error) {
	spec, ok := unit.LookupRate(symbol)
	if !ok {
		return Rate{}, errcode.New(errcode.CodeUnknownUnit, "%q", symbol)
	}
	return Rate{
		bits:         n * spec.Scale(),
		displayBytes: spec.Family == unit.FamilyRateBytes,
	}, nil
}

// FromHumanReadable parses a string like "2.5 GBps" into a Rate, taking
// the display preference from the parsed family.
func FromHumanReadable(s string) (Rate, error) {
	bits, byteFamily, err := unit.ParseRateDetail(s)
	if err != nil {
		return Rate{}, err
	}
	return Rate{bits: bits, displayBytes: byteFamily}, nil
}

// parse normalizes any supported operand into canonical bits per second.
func parse(v any) (float64, error) {
	switch x := v.(type) {
	case Rate:
		return x.bits, nil
	case *Rate:
		if x == nil {
			return 0, errcode.New(errcode.CodeParse, "nil rate operand")
		}
		return x.bits, nil
	case string:
		return unit.ParseRate(x)
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
		return 0, errcode.New(errcode.CodeParse, "unsupported rate operand type %T", v)
	}
}

// BitsPerSecond returns the canonical magnitude.
func (r Rate) BitsPerSecond() float64 { return r.bits }

// BytesPerSecond returns the magnitude as bytes per second.
func (r Rate) BytesPerSecond() float64 { return r.bits / unit.BitsPerByte }

// DisplaysBytes reports the stored display preference.
func (r Rate) DisplaysBytes() bool { return r.displayBytes }

// Value expresses the rate in the given unit, rounded to precision
// decimals. Pass a negative precision to keep the full value.
func (r Rate) Value(symbol string, precision int) (float64, error) {
	v, err := unit.Convert(r.bits, symbol, unit.FamilyRateBits)
	if err != nil {
		return 0, err
	}
	return unit.Round(v, precision), nil
}

// FormatOption adjusts precision, delimiter and unit family for To and
// Humanize.
type FormatOption func(*formatState)

type formatState struct {
	opts unit.FormatOpts
	// nil means "use the rate's display preference".
	bitFamily *bool
}

func WithPrecision(p int) FormatOption {
	return func(st *formatState) { st.opts.Precision = p }
}

func WithDelimiter(d string) FormatOption {
	return func(st *formatState) { st.opts.Delimiter = d }
}

func WithoutRounding() FormatOption {
	return func(st *formatState) { st.opts.Precision = unit.NoRounding }
}

// WithBitUnits forces bit-family rendering for one call.
func WithBitUnits() FormatOption {
	t := true
	return func(st *formatState) { st.bitFamily = &t }
}

// WithByteUnits forces byte-family rendering for one call.
func WithByteUnits() FormatOption {
	f := false
	return func(st *formatState) { st.bitFamily = &f }
}

func (r Rate) formatState(opts []FormatOption) formatState {
	st := formatState{opts: unit.DefaultFormatOpts()}
	for _, opt := range opts {
		opt(&st)
	}
	if st.bitFamily == nil {
		bits := !r.displayBytes
		st.bitFamily = &bits
	}
	return st
}

// To renders the rate in the given unit.
func (r Rate) To(symbol string, opts ...FormatOption) (string, error) {
	spec, ok := unit.LookupRate(symbol)
	if !ok {
		return "", errcode.New(errcode.CodeUnknownUnit, "%q", symbol)
	}
	st := r.formatState(opts)
	return unit.Format(r.bits/spec.Scale(), spec.Symbol, st.opts), nil
}

// Humanize renders the rate with the largest unit of the selected family
// whose value is at least 1, defaulting to two decimals, a space
// delimiter and the stored display preference.
func (r Rate) Humanize(opts ...FormatOption) string {
	st := r.formatState(opts)
	return unit.Humanize(r.bits, unit.RateSpecs(*st.bitFamily), st.opts)
}

func (r Rate) String() string { return r.Humanize() }
