package unit

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bytq/bytq/pkg/errcode"
)

// Plain decimal numbers only. Exponent forms and hex are not part of the
// accepted grammar.
var numberRe = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)

const maxUnitLen = 4

// ParseSize converts a human-readable size string into canonical bytes.
// A bare number is taken as an already-canonical byte count.
func ParseSize(s string) (float64, error) {
	return parseString(s, func(symbol string) (Spec, bool) {
		return LookupSize(symbol)
	})
}

// ParseRate converts a human-readable rate string into canonical bits
// per second. Byte-family suffixes scale by 8. A bare number is taken as
// already-canonical bits per second.
func ParseRate(s string) (float64, error) {
	v, _, err := ParseRateDetail(s)
	return v, err
}

// ParseRateDetail additionally reports whether the matched unit belongs
// to the byte family, so callers can preserve it as a display
// preference. Bare numbers report the bit family.
func ParseRateDetail(s string) (float64, bool, error) {
	byteFamily := false
	v, err := parseString(s, func(symbol string) (Spec, bool) {
		spec, ok := LookupRate(symbol)
		if ok {
			byteFamily = spec.Family == FamilyRateBytes
		}
		return spec, ok
	})
	return v, byteFamily, err
}

// parseString accepts `<number>[<spaces>]<unit>` or a bare number, and
// must consume the whole input. The unit token is the trailing run of
// letters, at most 4 long.
func parseString(s string, lookup func(string) (Spec, bool)) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errcode.New(errcode.CodeParse, "invalid numeric portion: empty input")
	}

	i := len(s)
	for i > 0 && isLetter(s[i-1]) {
		i--
	}
	numTok := strings.TrimRight(s[:i], " \t")
	unitTok := s[i:]

	if !numberRe.MatchString(numTok) {
		return 0, errcode.New(errcode.CodeParse, "invalid numeric portion: %q", s)
	}
	n, err := strconv.ParseFloat(numTok, 64)
	if err != nil {
		return 0, errcode.New(errcode.CodeParse, "invalid numeric portion: %q", numTok)
	}

	if unitTok == "" {
		// Bare number: already a canonical magnitude.
		return n, nil
	}
	if len(unitTok) > maxUnitLen {
		return 0, errcode.New(errcode.CodeParse, "unrecognized unit: %q", unitTok)
	}
	spec, ok := lookup(unitTok)
	if !ok {
		return 0, errcode.New(errcode.CodeParse, "unrecognized unit: %q", unitTok)
	}
	return n * spec.Scale(), nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
