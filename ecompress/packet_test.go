package ecompress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPacketRoundTripAllKinds(t *testing.T) {
	require := require.New(t)

	for kindIdx, k := range kinds {
		max := int32(1)<<(k.sampleBits-1) - 1
		min := -(int32(1) << (k.sampleBits - 1))

		samples := make([]int32, k.samples)
		for i := range samples {
			switch i % 3 {
			case 0:
				samples[i] = max
			case 1:
				samples[i] = min
			default:
				samples[i] = 0
			}
		}

		encoded := encodePacket(kindIdx, samples)
		require.Len(encoded, k.words*4)

		// Pad so decodePacket's 4-byte dispatch peek never runs past the
		// buffer for single-word kinds.
		padded := append(append([]byte(nil), encoded...), make([]byte, 4)...)

		decoded, consumed := decodePacket(padded)
		require.Equal(k.words*4, consumed)
		require.Equal(samples, decoded)
	}
}

func TestIndexMapDispatchesToEncodedKind(t *testing.T) {
	require := require.New(t)

	for kindIdx, k := range kinds {
		samples := make([]int32, k.samples)
		encoded := encodePacket(kindIdx, samples)

		top4 := uint32(encoded[0]) >> 4
		require.Equal(kindIdx, indexMap[top4], "kind %d prefix %04b", kindIdx, top4)
	}
}

func TestFitsWidth(t *testing.T) {
	require := require.New(t)

	require.True(fitsWidth(63, 7))
	require.True(fitsWidth(-64, 7))
	require.False(fitsWidth(64, 7))
	require.False(fitsWidth(-65, 7))
}
