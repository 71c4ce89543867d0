package datasize

import (
	"testing"

	"github.com/bytq/bytq/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeOf(t *testing.T) {
	sizes, err := RangeOf("1 MB", "3 MB", "1 MB")
	require.NoError(t, err)
	require.Len(t, sizes, 3)
	assert.Equal(t, 1.0*1024*1024, sizes[0].Bytes())
	assert.Equal(t, 2.0*1024*1024, sizes[1].Bytes())
	assert.Equal(t, 3.0*1024*1024, sizes[2].Bytes())

	// Single element when start == end.
	sizes, err = RangeOf("1 MB", "1 MB", "1 MB")
	require.NoError(t, err)
	assert.Len(t, sizes, 1)
}

func TestRangeOfInvalid(t *testing.T) {
	_, err := RangeOf("3 MB", "1 MB", "1 MB")
	assert.Equal(t, errcode.CodeInvalidArgument, errcode.CodeOf(err))

	_, err = RangeOf("1 MB", "3 MB", 0)
	assert.Equal(t, errcode.CodeInvalidArgument, errcode.CodeOf(err))

	_, err = RangeOf("1 MB", "3 MB", -1024)
	assert.Equal(t, errcode.CodeInvalidArgument, errcode.CodeOf(err))
}

func TestSum(t *testing.T) {
	total, err := Sum("1 MB", "512 kB", 512*1024)
	require.NoError(t, err)
	assert.Equal(t, "2 MB", total.Humanize())

	empty, err := Sum()
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty.Bytes())
}

func TestAverage(t *testing.T) {
	avg, err := Average("1 MB", "3 MB")
	require.NoError(t, err)
	assert.Equal(t, 2.0*1024*1024, avg.Bytes())

	_, err = Average()
	assert.Equal(t, errcode.CodeInvalidArgument, errcode.CodeOf(err))
}

func TestMaximumMinimum(t *testing.T) {
	hi, err := Maximum("1 MB", "3 MB", "512 kB")
	require.NoError(t, err)
	assert.Equal(t, 3.0*1024*1024, hi.Bytes())

	lo, err := Minimum("1 MB", "3 MB", "512 kB")
	require.NoError(t, err)
	assert.Equal(t, 512.0*1024, lo.Bytes())

	_, err = Maximum()
	assert.Equal(t, errcode.CodeInvalidArgument, errcode.CodeOf(err))
	_, err = Minimum()
	assert.Equal(t, errcode.CodeInvalidArgument, errcode.CodeOf(err))
}
