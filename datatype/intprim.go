package datatype

import "math"

// i2ToS2 and s2ToI2 both reverse the byte order of every 16-bit sample in
// place. I2 and S2 carry the same bits, swapped end for end; the original
// i2s2.c gives the two conversions identical bodies.
func i2ToS2(buf []byte, n int) {
	for i := 0; i < n; i++ {
		off := i * 2
		buf[off], buf[off+1] = buf[off+1], buf[off]
	}
}

func s2ToI2(buf []byte, n int) { i2ToS2(buf, n) }

// i2ToS4 widens byte-swapped 16-bit integers to sign-extended 32-bit,
// walking back to front so the 4-byte write never clobbers an unread
// 2-byte source (i2s4.c).
func i2ToS4(buf []byte, n int) {
	for i := n - 1; i >= 0; i-- {
		srcOff := i * 2
		dstOff := i * 4
		v := int32(int16(uint16(buf[srcOff+1])<<8 | uint16(buf[srcOff])))
		byteOrder.PutUint32(buf[dstOff:dstOff+4], uint32(v))
	}
}

// s4ToI2 narrows 32-bit integers to byte-swapped 16-bit, walking front to
// back so the 2-byte write never runs ahead of the 4-byte source (i2s4.c).
func s4ToI2(buf []byte, n int) {
	for i := 0; i < n; i++ {
		srcOff := i * 4
		dstOff := i * 2
		v := byteOrder.Uint32(buf[srcOff : srcOff+4])
		buf[dstOff] = byte(v)
		buf[dstOff+1] = byte(v >> 8)
	}
}

// i4ToS4 and s4ToI4 both reverse the byte order of every 32-bit sample in
// place (i4s4.c: the two conversions alias each other).
func i4ToS4(buf []byte, n int) {
	for i := 0; i < n; i++ {
		off := i * 4
		buf[off], buf[off+3] = buf[off+3], buf[off]
		buf[off+1], buf[off+2] = buf[off+2], buf[off+1]
	}
}

func s4ToI4(buf []byte, n int) { i4ToS4(buf, n) }

// s2ToS4 sign-extends big-endian 16-bit integers to 32-bit, back to front
// (s2s4.c).
func s2ToS4(buf []byte, n int) {
	for i := n - 1; i >= 0; i-- {
		srcOff := i * 2
		dstOff := i * 4
		v := int32(int16(byteOrder.Uint16(buf[srcOff : srcOff+2])))
		byteOrder.PutUint32(buf[dstOff:dstOff+4], uint32(v))
	}
}

// s4ToS2 truncates 32-bit integers to their low 16 bits, front to back, with
// no overflow check (s2s4.c).
func s4ToS2(buf []byte, n int) {
	for i := 0; i < n; i++ {
		srcOff := i * 4
		dstOff := i * 2
		v := byteOrder.Uint32(buf[srcOff : srcOff+4])
		byteOrder.PutUint16(buf[dstOff:dstOff+2], uint16(v))
	}
}

// s3ToS4 widens a 24-bit big-endian signed integer to 32-bit, sign-extending
// from the top byte, back to front (s3s4.c).
func s3ToS4(buf []byte, n int) {
	for i := n - 1; i >= 0; i-- {
		srcOff := i * 3
		dstOff := i * 4
		hi := uint16(int16(int8(buf[srcOff])))
		mid, lo := buf[srcOff+1], buf[srcOff+2]
		buf[dstOff] = byte(hi >> 8)
		buf[dstOff+1] = byte(hi)
		buf[dstOff+2] = mid
		buf[dstOff+3] = lo
	}
}

// s4ToS3 narrows a 32-bit integer to its low 3 bytes, front to back. The
// caller must guarantee the value fits in 24 bits; no range check is
// performed (s3s4.c).
func s4ToS3(buf []byte, n int) {
	for i := 0; i < n; i++ {
		srcOff := i * 4
		dstOff := i * 3
		buf[dstOff] = buf[srcOff+1]
		buf[dstOff+1] = buf[srcOff+2]
		buf[dstOff+2] = buf[srcOff+3]
	}
}

// s2ToT8 casts 16-bit integers to IEEE doubles, back to front (s2t8.c).
func s2ToT8(buf []byte, n int) {
	for i := n - 1; i >= 0; i-- {
		srcOff := i * 2
		dstOff := i * 8
		v := int16(byteOrder.Uint16(buf[srcOff : srcOff+2]))
		byteOrder.PutUint64(buf[dstOff:dstOff+8], math.Float64bits(float64(v)))
	}
}

// t8ToS2 truncates IEEE doubles to 16-bit integers, front to back, with no
// saturation on overflow (s2t8.c).
func t8ToS2(buf []byte, n int) {
	for i := 0; i < n; i++ {
		srcOff := i * 8
		dstOff := i * 2
		f := math.Float64frombits(byteOrder.Uint64(buf[srcOff : srcOff+8]))
		byteOrder.PutUint16(buf[dstOff:dstOff+2], uint16(int16(f)))
	}
}
