package ecompress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeCheckSignExtends(t *testing.T) {
	require := require.New(t)

	require.Equal(int32(7), makeCheck(7))
	require.Equal(int32(-1), makeCheck(-1))
	// 0x00ffffff is all-ones in the low 24 bits: sign-extends to -1.
	require.Equal(int32(-1), makeCheck(0x00ffffff))
	// High byte is masked away entirely.
	require.Equal(int32(7), makeCheck(0x7f000007))
}

func TestHeaderRoundTrip(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, headerSize)
	putHeader(buf, 16, 7, false, 1, 7)

	h, err := parseHeader(buf)
	require.NoError(err)
	require.Equal(uint16(16), h.nbyte)
	require.Equal(uint16(7), h.nsamp)
	require.False(h.uncompressed)
	require.Equal(uint8(1), h.ndiff)
	require.Equal(int32(7), h.check)
}

func TestHeaderUncompressedFlag(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, headerSize)
	putHeader(buf, 36, 7, true, 0, 0)

	h, err := parseHeader(buf)
	require.NoError(err)
	require.True(h.uncompressed)
}

func TestParseHeaderTooShort(t *testing.T) {
	require := require.New(t)

	_, err := parseHeader(make([]byte, 4))
	require.ErrorIs(err, ErrLengthError)
}

func TestParseHeaderRejectsOversizedNsamp(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, headerSize)
	putHeader(buf, 16400, maxSamplesPerBlock+1, false, 0, 0)

	_, err := parseHeader(buf)
	require.ErrorIs(err, ErrSampError)
}

func TestParseHeaderRejectsInconsistentByteCount(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, headerSize)
	// nbyte smaller than nsamp+8 is never valid.
	putHeader(buf, 8, 7, false, 1, 7)

	_, err := parseHeader(buf)
	require.ErrorIs(err, ErrSampError)
}
