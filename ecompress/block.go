package ecompress

import "github.com/sixlettervariables/waveio-codec/internal/pool"

// DecodeBlock decodes one framed block from the front of buf into out,
// which must have capacity for the block's nsamp samples. It returns the
// number of samples decoded and the block's declared byte length (nbyte),
// so callers can advance to the next block. Mirrors e_compression.c's
// block_e_decomp.
func DecodeBlock(buf []byte, out []int32) (nsamp int, nbyte int, err error) {
	header, err := parseHeader(buf)
	if err != nil {
		return 0, 0, err
	}
	if int(header.nbyte) > len(buf) {
		return 0, 0, ErrLengthError
	}

	if header.uncompressed {
		if int(header.nbyte) != (int(header.nsamp)+2)*4 {
			return 0, 0, ErrLengthError
		}
		for i := 0; i < int(header.nsamp); i++ {
			off := headerSize + i*4
			out[i] = int32(byteOrder.Uint32(buf[off : off+4])) //nolint:gosec
		}
		return int(header.nsamp), int(header.nbyte), nil
	}

	if header.ndiff > MaxNdiff {
		return 0, 0, ErrDiffError
	}

	payload := buf[headerSize:header.nbyte]
	samps, pos := 0, 0
	for samps < int(header.nsamp) {
		if pos+4 > len(payload) {
			return 0, 0, ErrLengthError
		}
		top4 := byteOrder.Uint32(payload[pos:pos+4]) >> 28
		k := kinds[indexMap[top4]]
		if pos+k.words*4 > len(payload) {
			return 0, 0, ErrLengthError
		}

		samples, consumed := decodePacket(payload[pos : pos+k.words*4])
		for _, s := range samples {
			out[samps] = s
			samps++
		}
		pos += consumed
	}
	if samps != int(header.nsamp) {
		return 0, 0, ErrSampError
	}

	for pass := 0; pass < int(header.ndiff); pass++ {
		for i := 1; i < samps; i++ {
			out[i] += out[i-1]
		}
	}

	if samps > 0 && makeCheck(out[samps-1]) != header.check {
		return 0, 0, ErrCheckError
	}

	return samps, int(header.nbyte), nil
}

// BlockBudget resolves a datatype tag ("e0".."e8", "E0".."E9") to the block
// byte budget the encoder should target, per spec §4.5.
func BlockBudget(tag string) (int, error) {
	if len(tag) != 2 {
		return 0, ErrTypeError
	}
	digit := tag[1]
	switch tag[0] {
	case 'e':
		if digit == '0' {
			return 1024, nil
		}
		if digit < '1' || digit > '8' {
			return 0, ErrTypeError
		}
		return int(digit-'0') * 2048, nil
	case 'E':
		if digit == '0' {
			return 1200, nil
		}
		if digit < '1' || digit > '9' {
			return 0, ErrTypeError
		}
		return (int(digit-'0') + 1) * 400, nil
	}
	return 0, ErrTypeError
}

// EncodeBlock encodes a prefix of in into one full, bufBytes-sized block.
// It returns the block bytes, the number of samples consumed, and the
// number of bytes actually used within the block (<= bufBytes) — the
// caller decides whether to keep the block at its full padded size or
// truncate it to usedBytes (the SHORT_END choice at stream level).
// Mirrors the per-block body of e_compression.c's e_comp.
//
// The header's nbyte is bufBytes when that is a valid length for the
// samples consumed (nbyte <= (nsamp+2)*4). Otherwise, as for an
// uncompressed block short of bufBytes or a compressed block at the end of
// the input, nbyte is usedBytes and the rest of the block is zero padding.
//
// The candidate window considered for packing is bounded by
// maxSamplesPerBlock, not by the byte budget: packed samples can use far
// fewer than one word each, so the byte budget alone (via encodeCompressed's
// own word-accounting) determines how many of the window's samples end up
// consumed. Only the uncompressed fallback, where every sample costs one
// full word, is bounded by bufBytes directly.
func EncodeBlock(in []int32, bufBytes int) (block []byte, nsamp int, usedBytes int, err error) {
	bufInts := bufBytes/4 - 2
	window := len(in)
	if window > maxSamplesPerBlock {
		window = maxSamplesPerBlock
	}

	dchoose, diffs := chooseDifferencing(in[:window])
	if dchoose < 0 {
		rawCap := window
		if rawCap > bufInts {
			rawCap = bufInts
		}
		return encodeUncompressed(in, rawCap, bufBytes)
	}
	return encodeCompressed(in, diffs[dchoose], dchoose, window, bufBytes, bufInts)
}

// chooseDifferencing computes up to MaxNdiff+1 difference tables over
// samples and returns, among the orders whose values all fit 28 bits, the
// one with the smallest sum of magnitudes, the lowest order winning a tie
// (spec §4.5 step 2-3). It returns -1 if no order fits.
func chooseDifferencing(samples []int32) (int, [][]int32) {
	diffs := make([][]int32, MaxNdiff+1)
	dmaxbit := make([]uint32, MaxNdiff+1)
	dsum := make([]float64, MaxNdiff+1)

	diffs[0] = append([]int32(nil), samples...)

	for j := 1; j <= MaxNdiff; j++ {
		row, release := pool.GetInt32Slice(len(samples))
		if len(samples) > 0 {
			row[0] = samples[0]
		}
		for i := 1; i < len(samples); i++ {
			row[i] = diffs[j-1][i] - diffs[j-1][i-1]
		}
		diffs[j] = append([]int32(nil), row...)
		release()
	}

	for j := 0; j <= MaxNdiff; j++ {
		abs, release := pool.GetUint32Slice(len(diffs[j]))
		for i, v := range diffs[j] {
			abs[i] = absUint32(v)
			dmaxbit[j] |= abs[i]
			dsum[j] += float64(abs[i])
		}
		release()
	}

	dchoose := -1
	for j := 0; j <= MaxNdiff; j++ {
		if dmaxbit[j]&0xf8000000 != 0 {
			continue
		}
		if dchoose < 0 || dsum[j] < dsum[dchoose] {
			dchoose = j
		}
	}
	return dchoose, diffs
}

func absUint32(v int32) uint32 {
	if v < 0 {
		return uint32(-v) //nolint:gosec
	}
	return uint32(v)
}

func encodeUncompressed(in []int32, didsamp, bufBytes int) ([]byte, int, int, error) {
	used := (didsamp + 2) * 4
	block := make([]byte, bufBytes)
	putHeader(block, uint16(used), uint16(didsamp), true, 0, 0) //nolint:gosec
	for i := 0; i < didsamp; i++ {
		off := headerSize + i*4
		byteOrder.PutUint32(block[off:off+4], uint32(in[i])) //nolint:gosec
	}
	return block, didsamp, used, nil
}

func encodeCompressed(in []int32, diff []int32, dchoose, maxSamp, bufBytes, bufInts int) ([]byte, int, int, error) {
	payload := make([]byte, 0, bufInts*4)
	didsamp := 0

	for didsamp < maxSamp {
		wordsLeft := bufInts - len(payload)/4
		remaining := maxSamp - didsamp
		emitted := false

		for _, kindIdx := range encodeOrder {
			k := kinds[kindIdx]
			if remaining < k.samples || wordsLeft < k.words {
				continue
			}
			samples := diff[didsamp : didsamp+k.samples]
			if !allFitWidth(samples, k.sampleBits) {
				continue
			}
			payload = append(payload, encodePacket(kindIdx, samples)...)
			didsamp += k.samples
			emitted = true
			break
		}
		if !emitted {
			break
		}
	}

	used := headerSize + len(payload)
	block := make([]byte, bufBytes)
	var check int32
	if didsamp > 0 {
		check = makeCheck(in[didsamp-1])
	}
	// A header may not declare more than (nsamp+2)*4 bytes, so a block
	// holding too few samples for its full budget declares usedBytes.
	nbyte := bufBytes
	if nbyte > (didsamp+2)*4 {
		nbyte = used
	}
	putHeader(block, uint16(nbyte), uint16(didsamp), false, uint8(dchoose), check) //nolint:gosec
	copy(block[headerSize:], payload)

	return block, didsamp, used, nil
}

func allFitWidth(samples []int32, width uint) bool {
	for _, v := range samples {
		if !fitsWidth(v, width) {
			return false
		}
	}
	return true
}
