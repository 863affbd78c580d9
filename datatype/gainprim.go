package datatype

import "math"

// g2gain maps a 2-bit gain code to its mantissa shift, per g2s4.c.
var g2gain = [4]uint{0, 2, 4, 7}

// g2ToS4 widens a 2-bit-gain-code 16-bit integer to 32-bit: the top 2 bits
// select a shift from g2gain, the low 14 bits are a mantissa biased by
// 0x1fff (g2s4.c).
func g2ToS4(buf []byte, n int) {
	for i := n - 1; i >= 0; i-- {
		srcOff := i * 2
		dstOff := i * 4
		s := byteOrder.Uint16(buf[srcOff : srcOff+2])
		gainCode := (s & 0xc000) >> 14
		mantissa := int32(s&0x3fff) - 0x1fff
		v := mantissa << g2gain[gainCode]
		byteOrder.PutUint32(buf[dstOff:dstOff+4], uint32(v))
	}
}

// g2Tier is one rung of the s4ToG2 rounding cascade: the value is
// round-biased by bias, and fits this tier if the biased magnitude stays
// under threshold, in which case it is shifted down by shift and tagged.
type g2Tier struct {
	bias      int64
	threshold uint32
	shift     uint
	tag       uint16
}

// g2Tiers is the s4ToG2 cascade, tried from finest to coarsest gain, with
// the bias/threshold/shift/tag constants literal from g2s4.c.
var g2Tiers = [4]g2Tier{
	{bias: 0x00001fff, threshold: 0x4000, shift: 0, tag: 0x0000},
	{bias: 0x00007ffd, threshold: 0x10000, shift: 2, tag: 0x4000},
	{bias: 0x0001fff7, threshold: 0x40000, shift: 4, tag: 0x8000},
	{bias: 0x000fffbf, threshold: 0x200000, shift: 7, tag: 0xc000},
}

// s4ToG2 narrows a 32-bit integer to the 2-bit-gain-code format, trying
// each gain tier in ascending order and saturating to 0xffff if the value
// doesn't fit any tier (g2s4.c).
func s4ToG2(buf []byte, n int) {
	for i := 0; i < n; i++ {
		srcOff := i * 4
		dstOff := i * 2
		v := int32(byteOrder.Uint32(buf[srcOff : srcOff+4]))

		out := uint16(0xffff)
		for _, t := range g2Tiers {
			biased := uint32(int64(v) + t.bias)
			if biased&0x7fffffff < t.threshold {
				out = uint16(biased>>t.shift)&0x3fff | t.tag
				break
			}
		}
		byteOrder.PutUint16(buf[dstOff:dstOff+2], out)
	}
}

// a2ToT4 widens an Aftac gain-ranged 16-bit sample (3-bit gain code, 13-bit
// mantissa) to an IEEE single. The mantissa is shifted into the high half
// of a 32-bit word, arithmetic-shifted right by 5 plus twice the gain code,
// then scaled back down by 8 as it's cast to float (a2t4.c).
func a2ToT4(buf []byte, n int) {
	for i := n - 1; i >= 0; i-- {
		srcOff := i * 2
		dstOff := i * 4
		s := byteOrder.Uint16(buf[srcOff : srcOff+2])

		shifted := int16(s << 3)
		val := int32(shifted) << 16
		gainCode := (s & 0xe000) >> 13
		val >>= 5 + uint(gainCode)*2

		f := float32(val) / 8.0
		byteOrder.PutUint32(buf[dstOff:dstOff+4], math.Float32bits(f))
	}
}

// t4ToA2 narrows an IEEE single to the Aftac gain-ranged format. Values
// outside the representable range saturate; in range, the value is scaled
// by 8 and tested against 7 descending gain tiers (a2t4.c, non-OLDWAY
// branch, the one spec.md's decoders treat as canonical).
func t4ToA2(buf []byte, n int) {
	type tier struct {
		testShift uint
		leftShift uint
		tag       uint16
	}
	tiers := [6]tier{
		{1, 11, 0xe000},
		{3, 9, 0xc000},
		{5, 7, 0xa000},
		{7, 5, 0x8000},
		{9, 3, 0x6000},
		{11, 1, 0x4000},
	}

	for i := 0; i < n; i++ {
		srcOff := i * 4
		dstOff := i * 2
		f := math.Float32frombits(byteOrder.Uint32(buf[srcOff : srcOff+4]))

		var out uint16
		switch {
		case f > 8388607:
			out = 0xefff
		case f < -8388608:
			out = 0xffff
		default:
			l := int32(float64(f) * 8.0)
			l <<= 5
			// u aliases only the top 16 bits of l, matching the short/long
			// pointer aliasing a2t4.c relies on for a big-endian host.
			u := int16(uint32(l) >> 16) //nolint:gosec

			matched := false
			for _, t := range tiers {
				if (int32(u>>t.testShift)+1)&0xfffe == 0 {
					shifted := l << t.leftShift
					out = uint16(uint32(shifted)>>16)&0x1fff | t.tag
					matched = true
					break
				}
			}
			if !matched && (int32(u>>13)+1)&0xfffe == 0 {
				shifted := l >> 1
				out = uint16(uint32(shifted)>>16)&0x1fff | 0x2000
				matched = true
			}
			if !matched {
				out = uint16(u>>3) & 0x1fff
			}
		}
		byteOrder.PutUint16(buf[dstOff:dstOff+2], out)
	}
}

// a2ToT8 and t8ToA2 compose the gain-ranged conversion through T4, matching
// the composed chain convdata.c's datatype table uses for A2's have_t8
// slot.
func a2ToT8(buf []byte, n int) {
	a2ToT4(buf, n)
	t4ToT8(buf, n)
}

func t8ToA2(buf []byte, n int) {
	t8ToT4(buf, n)
	t4ToA2(buf, n)
}
