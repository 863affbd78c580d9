package ecompress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func makeRampSamples(n int, start int32) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = start + int32(i)
	}
	return out
}

func TestCompressDecompressRoundTripFullEnd(t *testing.T) {
	require := require.New(t)

	in := makeRampSamples(237, -50)
	stream, err := Compress(in, "e2", FullEnd)
	require.NoError(err)

	out := make([]int32, len(in))
	require.NoError(Decompress(stream, len(in), 0, len(in), out))
	require.Equal(in, out)
}

func TestCompressDecompressRoundTripShortEnd(t *testing.T) {
	require := require.New(t)

	in := makeRampSamples(237, -50)
	stream, err := Compress(in, "e2", ShortEnd)
	require.NoError(err)

	out := make([]int32, len(in))
	require.NoError(Decompress(stream, len(in), 0, len(in), out))
	require.Equal(in, out)
}

// threeFixedBlocks encodes in (exactly 300 samples) as three explicit
// 400-byte blocks of 100 samples each, matching spec's e-stream seek
// scenario directly rather than via a tag whose budget happens to be 400.
func threeFixedBlocks(t *testing.T, in []int32) []byte {
	t.Helper()
	require := require.New(t)
	require.Len(in, 300)

	stream := make([]byte, 0, 1200)
	for i := 0; i < 300; i += 100 {
		block, nsamp, _, err := EncodeBlock(in[i:i+100], 400)
		require.NoError(err)
		require.Equal(100, nsamp)
		stream = append(stream, block...)
	}
	return stream
}

// TestDecompressSeeksAcrossBlocks covers the scenario of three 400-byte
// blocks of 100 samples each, seeking a range that starts partway into
// the second block.
func TestDecompressSeeksAcrossBlocks(t *testing.T) {
	require := require.New(t)

	in := makeRampSamples(300, 1)
	stream := threeFixedBlocks(t, in)

	out := make([]int32, 100)
	require.NoError(Decompress(stream, len(in), 150, 100, out))
	require.Equal(in[150:250], out)
}

func TestDecompressWholeRangeMatchesInput(t *testing.T) {
	require := require.New(t)

	in := makeRampSamples(300, 1)
	stream := threeFixedBlocks(t, in)

	out := make([]int32, 300)
	require.NoError(Decompress(stream, len(in), 0, 300, out))
	require.Equal(in, out)
}

func TestDecompressArgValidation(t *testing.T) {
	require := require.New(t)

	in := makeRampSamples(10, 0)
	stream, err := Compress(in, "e1", FullEnd)
	require.NoError(err)

	out := make([]int32, 10)
	require.ErrorIs(Decompress(stream, 10, -1, 1, out), ErrArgError)
	require.ErrorIs(Decompress(stream, 10, 10, 1, out), ErrArgError)
	require.ErrorIs(Decompress(stream, 10, 5, 10, out), ErrArgError)
	require.ErrorIs(Decompress(nil, 10, 0, 1, out), ErrArgError)
}

func TestCompressInPlaceRoundTrip(t *testing.T) {
	require := require.New(t)

	in := makeRampSamples(50, 3)
	buf := make([]byte, 50*4)
	for i, v := range in {
		buf[i*4] = byte(uint32(v) >> 24)
		buf[i*4+1] = byte(uint32(v) >> 16)
		buf[i*4+2] = byte(uint32(v) >> 8)
		buf[i*4+3] = byte(uint32(v))
	}

	// Worst case never exceeds the original size plus one block's header
	// overhead, which easily fits double the raw size.
	work := make([]byte, len(buf)*4)
	copy(work, buf)
	n, err := CompressInPlace(work, 50, "e1", ShortEnd)
	require.NoError(err)
	require.Greater(n, 0)

	out := make([]int32, 50)
	require.NoError(Decompress(work[:n], 50, 0, 50, out))
	require.Equal(in, out)
}
