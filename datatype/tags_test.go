package datatype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLengthKnownTags(t *testing.T) {
	require := require.New(t)

	cases := map[Tag]int{
		A2: 2, F4: 4, F8: 8, G2: 2, I2: 2,
		I4: 4, S2: 2, S3: 3, S4: 4, T4: 4, T8: 8,
	}
	for tag, width := range cases {
		got, err := Length(tag)
		require.NoError(err)
		require.Equal(width, got, "tag %s", tag)
	}
}

func TestLengthUnknownTag(t *testing.T) {
	require := require.New(t)

	_, err := Length(Tag(0))
	require.ErrorIs(err, ErrUnknownTag)
}

func TestTagString(t *testing.T) {
	require := require.New(t)

	require.Equal("s4", S4.String())
	require.Equal("t8", T8.String())
	require.Equal("??", Tag(0).String())
}
