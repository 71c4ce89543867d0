// Package unit holds the shared parsing, conversion and formatting core
// behind the datasize and datarate value types. Canonical magnitudes are
// bytes for the size family and bits per second for the rate families.
package unit

import (
	"math"
	"strings"

	"github.com/bytq/bytq/pkg/errcode"
)

type Family int

const (
	FamilySize Family = iota
	FamilyRateBits
	FamilyRateBytes
)

// For binary (IEC-scaled) size units: kB, MB, GB, etc.
const SizeBase = 1024

// For decimal rate units: kbps, Mbps, kBps, etc.
const RateBase = 1000

// BitsPerByte converts between the rate byte family and the canonical
// bits-per-second magnitude.
const BitsPerByte = 8

// Spec describes one recognized unit: its symbol, the exponent applied
// to the family base, and the family it belongs to.
type Spec struct {
	Symbol string
	Exp    int
	Family Family
}

// Scale returns the factor converting one of this unit into the family's
// canonical magnitude (bytes, or bits per second).
func (s Spec) Scale() float64 {
	switch s.Family {
	case FamilySize:
		return math.Pow(SizeBase, float64(s.Exp))
	case FamilyRateBytes:
		return math.Pow(RateBase, float64(s.Exp)) * BitsPerByte
	default:
		return math.Pow(RateBase, float64(s.Exp))
	}
}

var (
	// Ordered by ascending exponent. Humanization scans them backwards.
	sizeSpecs = []Spec{
		{"B", 0, FamilySize},
		{"kB", 1, FamilySize},
		{"MB", 2, FamilySize},
		{"GB", 3, FamilySize},
		{"TB", 4, FamilySize},
		{"PB", 5, FamilySize},
		{"EB", 6, FamilySize},
		{"ZB", 7, FamilySize},
		{"YB", 8, FamilySize},
	}

	rateBitSpecs = []Spec{
		{"bps", 0, FamilyRateBits},
		{"kbps", 1, FamilyRateBits},
		{"Mbps", 2, FamilyRateBits},
		{"Gbps", 3, FamilyRateBits},
		{"Tbps", 4, FamilyRateBits},
		{"Pbps", 5, FamilyRateBits},
		{"Ebps", 6, FamilyRateBits},
		{"Zbps", 7, FamilyRateBits},
		{"Ybps", 8, FamilyRateBits},
	}

	rateByteSpecs = []Spec{
		{"Bps", 0, FamilyRateBytes},
		{"kBps", 1, FamilyRateBytes},
		{"MBps", 2, FamilyRateBytes},
		{"GBps", 3, FamilyRateBytes},
		{"TBps", 4, FamilyRateBytes},
		{"PBps", 5, FamilyRateBytes},
		{"EBps", 6, FamilyRateBytes},
		{"ZBps", 7, FamilyRateBytes},
		{"YBps", 8, FamilyRateBytes},
	}
)

// SizeSpecs returns the size unit table ordered by ascending exponent.
func SizeSpecs() []Spec { return sizeSpecs }

// RateSpecs returns the requested rate sub-family table ordered by
// ascending exponent.
func RateSpecs(bits bool) []Spec {
	if bits {
		return rateBitSpecs
	}
	return rateByteSpecs
}

// LookupSize resolves a size unit symbol case-insensitively.
func LookupSize(symbol string) (Spec, bool) {
	for _, s := range sizeSpecs {
		if strings.EqualFold(s.Symbol, symbol) {
			return s, true
		}
	}
	return Spec{}, false
}

// LookupRate resolves a rate unit symbol. An exact-case match is tried
// first so that Mbps and MBps stay distinguishable; the case-insensitive
// fallback resolves to the bit family.
func LookupRate(symbol string) (Spec, bool) {
	for _, s := range rateBitSpecs {
		if s.Symbol == symbol {
			return s, true
		}
	}
	for _, s := range rateByteSpecs {
		if s.Symbol == symbol {
			return s, true
		}
	}
	for _, s := range rateBitSpecs {
		if strings.EqualFold(s.Symbol, symbol) {
			return s, true
		}
	}
	return Spec{}, false
}

// Convert expresses a canonical magnitude in the given unit.
func Convert(v float64, symbol string, f Family) (float64, error) {
	var (
		spec Spec
		ok   bool
	)
	if f == FamilySize {
		spec, ok = LookupSize(symbol)
	} else {
		spec, ok = LookupRate(symbol)
	}
	if !ok {
		return 0, errcode.New(errcode.CodeUnknownUnit, "%q", symbol)
	}
	return v / spec.Scale(), nil
}

// DecimalBits re-projects a byte count onto the decimal scale: the value
// at its auto-selected base-1024 exponent is read back with base-1000,
// then converted to bits. This is the network convention used by the
// transfer calculator, under which 1 GB means exactly 8 Gb.
func DecimalBits(bytes float64) float64 {
	exp := 0
	v := math.Abs(bytes)
	for e := len(sizeSpecs) - 1; e > 0; e-- {
		if v/math.Pow(SizeBase, float64(e)) >= 1 {
			exp = e
			break
		}
	}
	scaled := bytes / math.Pow(SizeBase, float64(exp))
	return scaled * math.Pow(RateBase, float64(exp)) * BitsPerByte
}
