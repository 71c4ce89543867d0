package datasize

import (
	"github.com/bytq/bytq/internal/unit"
	"github.com/bytq/bytq/pkg/datarate"
	"github.com/bytq/bytq/pkg/duration"
	"github.com/bytq/bytq/pkg/errcode"
)

// TransferTime returns how many seconds moving this size at the given
// rate takes. The size is converted to bits under the network
// convention, where unit prefixes count decimal: 1 GB at 100 Mbps is
// exactly 80 seconds.
func (s Size) TransferTime(rate any) (float64, error) {
	r, err := datarate.New(rate)
	if err != nil {
		return 0, err
	}
	bps := r.BitsPerSecond()
	if bps <= 0 {
		return 0, errcode.New(errcode.CodeInvalidArgument, "transfer rate must be positive, got %v bps", bps)
	}
	return unit.DecimalBits(s.bytes) / bps, nil
}

// FormattedTransferTime renders TransferTime through the default
// language registry; an empty code selects its default language.
func (s Size) FormattedTransferTime(rate any, code string) (string, error) {
	seconds, err := s.TransferTime(rate)
	if err != nil {
		return "", err
	}
	return duration.Format(seconds, code)
}
