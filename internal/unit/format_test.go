package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeSize(t *testing.T) {
	testCases := []struct {
		bytes  float64
		expect string
	}{
		{bytes: 0, expect: "0 B"},
		{bytes: 0.25, expect: "0.25 B"},
		{bytes: 1, expect: "1 B"},
		{bytes: 1023, expect: "1023 B"},
		{bytes: 1024, expect: "1 kB"},
		{bytes: 1536, expect: "1.5 kB"},
		{bytes: 1537, expect: "1.5 kB"},
		{bytes: 1024 * 1024, expect: "1 MB"},
		{bytes: 1.5 * 1024 * 1024 * 1024, expect: "1.5 GB"},
		{bytes: -1536, expect: "-1.5 kB"},
	}

	for _, tc := range testCases {
		t.Run(tc.expect, func(t *testing.T) {
			assert.Equal(t, tc.expect, Humanize(tc.bytes, SizeSpecs(), DefaultFormatOpts()))
		})
	}
}

func TestHumanizeRate(t *testing.T) {
	testCases := []struct {
		bits   float64
		bitFam bool
		expect string
	}{
		{bits: 0, bitFam: true, expect: "0 bps"},
		{bits: 100_000_000, bitFam: true, expect: "100 Mbps"},
		{bits: 1500, bitFam: true, expect: "1.5 kbps"},
		{bits: 8_000_000, bitFam: false, expect: "1 MBps"},
		{bits: 4000, bitFam: false, expect: "0.5 kBps"},
		{bits: 4, bitFam: false, expect: "0.5 Bps"},
	}

	for _, tc := range testCases {
		t.Run(tc.expect, func(t *testing.T) {
			assert.Equal(t, tc.expect, Humanize(tc.bits, RateSpecs(tc.bitFam), DefaultFormatOpts()))
		})
	}
}

func TestFormatOpts(t *testing.T) {
	v := 1234.0 * 1024
	assert.Equal(t, "1.21 MB", Humanize(v, SizeSpecs(), FormatOpts{Precision: 2, Delimiter: " "}))
	assert.Equal(t, "1.2 MB", Humanize(v, SizeSpecs(), FormatOpts{Precision: 1, Delimiter: " "}))
	assert.Equal(t, "1.205078125MB", Humanize(v, SizeSpecs(), FormatOpts{Precision: NoRounding, Delimiter: ""}))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.5, Round(1.5, 2))
	assert.Equal(t, 85.9, Round(85.89934592, 2))
	assert.Equal(t, -1.5, Round(-1.5009765625, 2))
	assert.Equal(t, 1.2345, Round(1.2345, NoRounding))
}
