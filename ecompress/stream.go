package ecompress

import "github.com/sixlettervariables/waveio-codec/internal/pool"

// Decompress fills out with the outsamp samples in [out0, out0+outsamp) of
// a compressed stream that totals insamp samples. It skips whole blocks
// without decoding their payload until it reaches the block containing
// out0, matching e_compression.c's e_decomp seek behaviour.
func Decompress(in []byte, insamp, out0, outsamp int, out []int32) error {
	if in == nil || insamp <= 0 || len(in) <= 0 ||
		out0 < 0 || out0 >= insamp || out0+outsamp > insamp {
		return ErrArgError
	}
	if outsamp == 0 {
		return nil
	}

	scratch, release := pool.GetInt32Slice(maxSamplesPerBlock)
	defer release()

	skipsamp, pos := 0, 0
	for {
		header, err := parseHeader(in[pos:])
		if err != nil {
			return err
		}
		if skipsamp+int(header.nsamp) > out0 {
			break
		}
		if pos+int(header.nbyte) > len(in) {
			return ErrLengthError
		}
		skipsamp += int(header.nsamp)
		pos += int(header.nbyte)
	}

	unbuf0 := out0 - skipsamp
	nsampDone := 0
	for nsampDone < outsamp {
		bsamp, bbyte, err := DecodeBlock(in[pos:], scratch)
		if err != nil {
			return err
		}

		avail := bsamp - unbuf0
		need := outsamp - nsampDone
		take := avail
		if take > need {
			take = need
		}
		copy(out[nsampDone:nsampDone+take], scratch[unbuf0:unbuf0+take])
		nsampDone += take
		if nsampDone == outsamp {
			break
		}

		pos += bbyte
		unbuf0 = 0
	}
	return nil
}

// DecompressInPlace decodes outsamp samples starting at out0 from a stream
// held in buf[:inbyte], then overwrites buf with the decoded big-endian
// int32 samples. The decoded samples are staged in an array allocated per
// call and never retained; the block scratch comes from internal/pool and
// Decompress returns it with a deferred release. Both are therefore
// released on every exit path including errors, matching
// e_decomp_inplace's contract.
func DecompressInPlace(buf []byte, insamp, inbyte, out0, outsamp int) error {
	out := make([]int32, outsamp)
	if err := Decompress(buf[:inbyte], insamp, out0, outsamp, out); err != nil {
		return err
	}
	for i, v := range out {
		byteOrder.PutUint32(buf[i*4:i*4+4], uint32(v)) //nolint:gosec
	}
	return nil
}

// Compress encodes in as a sequence of blocks sized for tag's byte budget,
// returning the concatenated stream. blockFlag controls whether the
// terminal block is padded to the full budget (FullEnd) or truncated to
// its actually-used bytes (ShortEnd). Mirrors e_compression.c's e_comp.
func Compress(in []int32, tag string, blockFlag BlockFlag) ([]byte, error) {
	bufBytes, err := BlockBudget(tag)
	if err != nil {
		return nil, err
	}
	if len(in) == 0 {
		return nil, ErrArgError
	}

	out := make([]byte, 0, (len(in)/maxSamplesPerBlock+2)*bufBytes)
	pos := 0
	for pos < len(in) {
		block, nsamp, used, err := EncodeBlock(in[pos:], bufBytes)
		if err != nil {
			return nil, err
		}
		if nsamp == 0 {
			return nil, ErrArgError
		}

		pos += nsamp
		if pos >= len(in) && blockFlag == ShortEnd {
			block = block[:used]
			byteOrder.PutUint16(block[0:2], uint16(used)) //nolint:gosec
		}
		out = append(out, block...)
	}
	return out, nil
}

// CompressInPlace encodes the insamp big-endian int32 samples held in buf,
// then overwrites buf with the encoded stream. buf must have enough
// capacity for the worst-case expansion (no compression achieved on any
// block); the caller is responsible for sizing it, matching
// e_comp_inplace's malloc-sized-for-worst-case contract. Returns the
// number of bytes written.
func CompressInPlace(buf []byte, insamp int, tag string, blockFlag BlockFlag) (int, error) {
	in := make([]int32, insamp)
	for i := range in {
		in[i] = int32(byteOrder.Uint32(buf[i*4 : i*4+4])) //nolint:gosec
	}

	out, err := Compress(in, tag, blockFlag)
	if err != nil {
		return 0, err
	}
	copy(buf, out)
	return len(out), nil
}
