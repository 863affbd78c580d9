package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleStream() []byte {
	// A byte pattern with some structure, approximating a real e-compressed
	// block well enough to exercise each codec's compress/decompress path.
	out := make([]byte, 2048)
	for i := range out {
		out[i] = byte(i % 17)
	}
	return out
}

func TestCodecsRoundTrip(t *testing.T) {
	require := require.New(t)

	data := sampleStream()
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := CreateCodec(ct)
		require.NoError(err, ct)

		compressed, err := codec.Compress(data)
		require.NoError(err, ct)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(err, ct)
		require.Equal(data, decompressed, ct)
	}
}

func TestCreateCodecInvalidType(t *testing.T) {
	require := require.New(t)

	_, err := CreateCodec(CompressionType(99))
	require.Error(err)
}

func TestGetCodecReturnsBuiltins(t *testing.T) {
	require := require.New(t)

	codec, err := GetCodec(CompressionS2)
	require.NoError(err)
	require.NotNil(codec)
}

func TestCompressionTypeString(t *testing.T) {
	require := require.New(t)

	require.Equal("none", CompressionNone.String())
	require.Equal("zstd", CompressionZstd.String())
	require.Equal("s2", CompressionS2.String())
	require.Equal("lz4", CompressionLZ4.String())
	require.Contains(CompressionType(200).String(), "unknown")
}

func TestCodecsHandleEmptyInput(t *testing.T) {
	require := require.New(t)

	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := CreateCodec(ct)
		require.NoError(err, ct)

		compressed, err := codec.Compress(nil)
		require.NoError(err, ct)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(err, ct)
		require.Empty(decompressed, ct)
	}
}
