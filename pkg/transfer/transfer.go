// Package transfer computes transfer timings from sizes and rates and
// renders them through a duration language registry.
package transfer

import (
	"github.com/bytq/bytq/pkg/datarate"
	"github.com/bytq/bytq/pkg/datasize"
	"github.com/bytq/bytq/pkg/duration"
)

// Calculator binds the transfer math to a language registry for the
// formatted variants.
type Calculator struct {
	languages *duration.Registry
}

// NewCalculator builds a Calculator; a nil registry selects the package
// default registry with the built-in languages.
func NewCalculator(languages *duration.Registry) *Calculator {
	if languages == nil {
		languages = duration.Default()
	}
	return &Calculator{languages: languages}
}

// Time returns the seconds needed to move size at rate. Size operands
// convert to bits under the network convention (decimal prefixes), so
// 1 GB at 100 Mbps is exactly 80 seconds. Non-positive rates fail.
func (c *Calculator) Time(size, rate any) (float64, error) {
	s, err := datasize.New(size)
	if err != nil {
		return 0, err
	}
	return s.TransferTime(rate)
}

// FormattedTime renders Time in the given language; an empty code
// selects the registry default.
func (c *Calculator) FormattedTime(size, rate any, code string) (string, error) {
	seconds, err := c.Time(size, rate)
	if err != nil {
		return "", err
	}
	return c.languages.Format(seconds, code)
}

// Amount returns the size moved at the given rate over the given number
// of seconds.
func (c *Calculator) Amount(rate any, seconds float64) (datasize.Size, error) {
	r, err := datarate.New(rate)
	if err != nil {
		return datasize.Size{}, err
	}
	bits := r.BitsPerSecond() * seconds
	return datasize.FromBits(bits), nil
}

// EstimateFileSize is Amount under its download-estimation name.
func (c *Calculator) EstimateFileSize(rate any, seconds float64) (datasize.Size, error) {
	return c.Amount(rate, seconds)
}

var defaultCalculator = NewCalculator(nil)

// Package-level forms over the default calculator.

func Time(size, rate any) (float64, error) {
	return defaultCalculator.Time(size, rate)
}

func FormattedTime(size, rate any, code string) (string, error) {
	return defaultCalculator.FormattedTime(size, rate, code)
}

func Amount(rate any, seconds float64) (datasize.Size, error) {
	return defaultCalculator.Amount(rate, seconds)
}

func EstimateFileSize(rate any, seconds float64) (datasize.Size, error) {
	return defaultCalculator.EstimateFileSize(rate, seconds)
}
