package unit

import (
	"testing"

	"github.com/bytq/bytq/pkg/errcode"
	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	testCases := []struct {
		in     string
		expect float64
	}{
		{in: "0", expect: 0},
		{in: "1536", expect: 1536},
		{in: "1.5", expect: 1.5},
		{in: "-2.5", expect: -2.5},
		{in: "1 B", expect: 1},
		{in: "1 kB", expect: 1024},
		{in: "1.5kB", expect: 1536},
		{in: "1.5 KB", expect: 1536},
		{in: "1.5 kb", expect: 1536},
		{in: "  2 MB  ", expect: 2 * 1024 * 1024},
		{in: "1 GB", expect: 1024 * 1024 * 1024},
		{in: "1 TB", expect: 1099511627776},
		{in: "0.5 YB", expect: 0.5 * 1208925819614629174706176.0},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ParseSize(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, v)
		})
	}
}

func TestParseSizeError(t *testing.T) {
	testCases := []struct {
		in     string
		reason string
	}{
		{in: "", reason: "invalid numeric portion"},
		{in: "abc", reason: "invalid numeric portion"},
		{in: "1.2.3 MB", reason: "invalid numeric portion"},
		{in: "x12 MB", reason: "invalid numeric portion"},
		{in: "12 QB", reason: "unrecognized unit"},
		{in: "12 bogus", reason: "unrecognized unit"},
		{in: "12 kBpsx", reason: "unrecognized unit"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParseSize(tc.in)
			if assert.Error(t, err) {
				assert.Equal(t, errcode.CodeParse, errcode.CodeOf(err))
				assert.Contains(t, err.Error(), tc.reason)
			}
		})
	}
}

func TestParseRate(t *testing.T) {
	testCases := []struct {
		in     string
		expect float64
	}{
		{in: "100", expect: 100},
		{in: "1 bps", expect: 1},
		{in: "1 kbps", expect: 1000},
		{in: "100 Mbps", expect: 100_000_000},
		{in: "1 Gbps", expect: 1_000_000_000},
		// Byte-family symbols are 8x the bit family at the same exponent.
		{in: "1 Bps", expect: 8},
		{in: "1 kBps", expect: 8000},
		{in: "1 MBps", expect: 8_000_000},
		// Case-insensitive fallback resolves to the bit family.
		{in: "1 GBPS", expect: 1_000_000_000},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ParseRate(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, v)
		})
	}
}

func TestLookupRateCase(t *testing.T) {
	bit, ok := LookupRate("Mbps")
	assert.True(t, ok)
	assert.Equal(t, FamilyRateBits, bit.Family)

	byteSpec, ok := LookupRate("MBps")
	assert.True(t, ok)
	assert.Equal(t, FamilyRateBytes, byteSpec.Family)
	assert.Equal(t, bit.Scale()*8, byteSpec.Scale())
}
