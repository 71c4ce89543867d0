package datasize

import (
	"testing"

	"github.com/bytq/bytq/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name   string
		in     any
		expect float64
	}{
		{name: "int bytes", in: 1536, expect: 1536},
		{name: "float bytes", in: 1536.0, expect: 1536},
		{name: "uint64 bytes", in: uint64(42), expect: 42},
		{name: "numeric string", in: "1536", expect: 1536},
		{name: "unit string", in: "1.5 kB", expect: 1536},
		{name: "size identity", in: MustNew("2 MB"), expect: 2 * 1024 * 1024},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, s.Bytes())
		})
	}

	_, err := New(struct{}{})
	assert.Equal(t, errcode.CodeParse, errcode.CodeOf(err))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "1.5 kB", MustNew(1536).Humanize())
	assert.Equal(t, "0 B", Size{}.Humanize())
	assert.Equal(t, "1.5kB", MustNew(1536).Humanize(WithDelimiter("")))
	assert.Equal(t, "1.21 MB", MustNew(1234*1024).Humanize())
	assert.Equal(t, "1.2 MB", MustNew(1234*1024).Humanize(WithPrecision(1)))
}

func TestHumanizeIdempotent(t *testing.T) {
	s := MustNew("1234567")
	once := s.Humanize()
	again := MustNew(once).Humanize()
	assert.Equal(t, once, again)
}

func TestFromUnit(t *testing.T) {
	s, err := FromUnit(1, "GB")
	require.NoError(t, err)
	assert.Equal(t, 1073741824.0, s.Bytes())

	_, err = FromUnit(1, "frob")
	assert.Equal(t, errcode.CodeUnknownUnit, errcode.CodeOf(err))
}

func TestFromBits(t *testing.T) {
	assert.Equal(t, 1024.0, FromBits(8192).Bytes())
	assert.Equal(t, 8192.0, MustNew(1024).Bits())
}

func TestUnitGetters(t *testing.T) {
	s := FromGigabytes(1.5)
	assert.Equal(t, 1.5, s.Gigabytes())
	assert.Equal(t, 1536.0, s.Megabytes())
	assert.Equal(t, 1.5*1024*1024, s.Kilobytes())
}

func TestValue(t *testing.T) {
	s := MustNew(1537)
	v, err := s.Value("kB", 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = s.Value("kB", -1)
	require.NoError(t, err)
	assert.Equal(t, 1537.0/1024, v)

	_, err = s.Value("frob", 2)
	assert.Equal(t, errcode.CodeUnknownUnit, errcode.CodeOf(err))
}

func TestTo(t *testing.T) {
	s := MustNew("2 GB")
	out, err := s.To("MB")
	require.NoError(t, err)
	assert.Equal(t, "2048 MB", out)

	out, err = s.To("kb", WithDelimiter(""))
	require.NoError(t, err)
	assert.Equal(t, "2097152kB", out)

	_, err = s.To("frob")
	assert.Equal(t, errcode.CodeUnknownUnit, errcode.CodeOf(err))
}

func TestFactories(t *testing.T) {
	assert.Equal(t, 1.0, FromBytes(1).Bytes())
	assert.Equal(t, 1024.0, FromKilobytes(1).Bytes())
	assert.Equal(t, 1024.0*1024*1024*1024, FromTerabytes(1).Bytes())
	assert.Equal(t, FromYottabytes(1).Bytes(), FromZettabytes(1024).Bytes())
}
