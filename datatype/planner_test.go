package datatype

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlanSameTagIsNoop(t *testing.T) {
	require := require.New(t)

	steps, err := Plan(S4, S4)
	require.NoError(err)
	require.Empty(steps)
}

func TestPlanUnknownTag(t *testing.T) {
	require := require.New(t)

	_, err := Plan(Tag(0), S4)
	require.ErrorIs(err, ErrUnknownTag)

	_, err = Plan(S4, Tag(0))
	require.ErrorIs(err, ErrUnknownTag)
}

func TestPlanDirectS4Pivot(t *testing.T) {
	require := require.New(t)

	// I2 -> S4: I2 has an S4 slot, S4 is the target, single step.
	steps, err := Plan(I2, S4)
	require.NoError(err)
	require.Len(steps, 1)

	// S4 -> I4: S4 is the source, I4 has an S4 slot, single step.
	steps, err = Plan(S4, I4)
	require.NoError(err)
	require.Len(steps, 1)
}

func TestPlanTwoStepViaS4(t *testing.T) {
	require := require.New(t)

	// I2 -> I4: neither is S4, both have S4 slots.
	steps, err := Plan(I2, I4)
	require.NoError(err)
	require.Len(steps, 2)
}

func TestPlanDirectT8Pivot(t *testing.T) {
	require := require.New(t)

	steps, err := Plan(F4, T8)
	require.NoError(err)
	require.Len(steps, 1)

	steps, err = Plan(T8, F8)
	require.NoError(err)
	require.Len(steps, 1)
}

func TestPlanThreeOrFourStepChain(t *testing.T) {
	require := require.New(t)

	// I2 -> F4: I2 has no T8 slot (goes via S4 then T8), F4 has no S4 slot
	// (already at T8), so this chain is I2->S4, S4->T8, T8->F4: 3 steps.
	steps, err := Plan(I2, F4)
	require.NoError(err)
	require.Len(steps, 3)
}

func TestPlanSpecialCaseI2S2(t *testing.T) {
	require := require.New(t)

	steps, err := Plan(I2, S2)
	require.NoError(err)
	require.Len(steps, 1)

	steps, err = Plan(S2, I2)
	require.NoError(err)
	require.Len(steps, 1)
}

func TestConvertIntegerChainRoundTrip(t *testing.T) {
	require := require.New(t)

	vals := []int64{0, 1, -1, 1000, -1000}
	buf := packSamples(4, 2, vals)
	n := len(vals)

	require.NoError(Convert(buf, n, I2, I4))
	require.NoError(Convert(buf, n, I4, I2))

	require.Equal(packSamples(4, 2, vals)[:n*2], buf[:n*2])
}

func TestConvertUnknownTag(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 8)
	err := Convert(buf, 2, Tag(0), S4)
	require.ErrorIs(err, ErrUnknownTag)
}

func TestConvertA2ThroughT4RoundTrip(t *testing.T) {
	require := require.New(t)

	buf := f32Buf([]float32{100.0, -100.0, 1000.0})
	n := 3
	orig := append([]byte(nil), buf...)

	// The T4 <-> A2 chain pivots through T8, so the buffer holds n doubles.
	widened := make([]byte, n*8)
	copy(widened, buf)

	require.NoError(Convert(widened, n, T4, A2))
	// A2 samples are 2 bytes wide; only the front n*2 bytes are meaningful.
	require.NoError(Convert(widened, n, A2, T4))

	for i := 0; i < n; i++ {
		want := byteOrder.Uint32(orig[i*4 : i*4+4])
		got := byteOrder.Uint32(widened[i*4 : i*4+4])
		wf := math.Float32frombits(want)
		gf := math.Float32frombits(got)
		require.InEpsilon(float64(wf), float64(gf), 0.01, "sample %d", i)
	}
}

func TestApplyEmptyPlanIsNoop(t *testing.T) {
	require := require.New(t)

	buf := []byte{1, 2, 3, 4}
	orig := append([]byte(nil), buf...)

	Apply(nil, buf, 1)
	require.Equal(orig, buf)
}
