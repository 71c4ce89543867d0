package datasize

import (
	"testing"

	"github.com/bytq/bytq/pkg/datarate"
	"github.com/bytq/bytq/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferTime(t *testing.T) {
	// 1 GB at 100 Mbps is exactly 80 seconds under the network
	// convention (1 GB means 8 Gb).
	size, err := FromUnit(1, "GB")
	require.NoError(t, err)
	rate, err := datarate.FromUnit(100, "Mbps")
	require.NoError(t, err)

	seconds, err := size.TransferTime(rate)
	require.NoError(t, err)
	assert.Equal(t, 80.0, seconds)

	// String and numeric rate operands work too.
	seconds, err = size.TransferTime("100 Mbps")
	require.NoError(t, err)
	assert.Equal(t, 80.0, seconds)
}

func TestTransferTimeInvalidRate(t *testing.T) {
	size := MustNew("1 GB")

	_, err := size.TransferTime(0)
	assert.Equal(t, errcode.CodeInvalidArgument, errcode.CodeOf(err))

	_, err = size.TransferTime(-100)
	assert.Equal(t, errcode.CodeInvalidArgument, errcode.CodeOf(err))
}

func TestFormattedTransferTime(t *testing.T) {
	size := MustNew("1 GB")

	out, err := size.FormattedTransferTime("100 Mbps", "en")
	require.NoError(t, err)
	assert.Equal(t, "1 minute, 20 seconds", out)
}
