package ecompress

// packetKind describes one of the six variable-width bit-packet layouts
// from spec §3: a fixed-width prefix identifies the kind, followed by a
// fixed count of two's-complement sample fields of a fixed width, packed
// MSB-first across 1 or 2 big-endian 32-bit words with no wasted bits.
type packetKind struct {
	prefix     uint32
	prefixBits uint
	words      int
	samples    int
	sampleBits uint
}

// kinds is indexed by the kind's position in spec §3's table: 0=9-bit/7,
// 1=10-bit/3, 2=7-bit/4, 3=12-bit/5, 4=15-bit/4, 5=28-bit/1. This ordering
// is what indexMap's dispatch values refer to.
var kinds = [6]packetKind{
	{prefix: 0b0, prefixBits: 1, words: 2, samples: 7, sampleBits: 9},
	{prefix: 0b10, prefixBits: 2, words: 1, samples: 3, sampleBits: 10},
	{prefix: 0b1100, prefixBits: 4, words: 1, samples: 4, sampleBits: 7},
	{prefix: 0b1101, prefixBits: 4, words: 2, samples: 5, sampleBits: 12},
	{prefix: 0b1110, prefixBits: 4, words: 2, samples: 4, sampleBits: 15},
	{prefix: 0b1111, prefixBits: 4, words: 1, samples: 1, sampleBits: 28},
}

// indexMap dispatches on the top 4 bits of a packet's first word to a
// kinds index, mirroring e_compression.c's 16-entry index_map.
var indexMap = [16]int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 3, 4, 5}

// encodeOrder is the encoder's first-fit preference order from spec §4.5:
// 7-bit/4, 9-bit/7, 10-bit/3, 12-bit/5, 15-bit/4, 28-bit/1 — the smallest
// packets first, distinct from indexMap's dispatch order.
var encodeOrder = [6]int{2, 0, 1, 3, 4, 5}

// fitsWidth reports whether v fits in a signed two's-complement field of
// width bits.
func fitsWidth(v int32, width uint) bool {
	max := int32(1)<<(width-1) - 1
	min := -(int32(1) << (width - 1))
	return v >= min && v <= max
}

// bitWriter packs fields MSB-first into a byte slice, flushing complete
// 32-bit big-endian words as they fill.
type bitWriter struct {
	out  []byte
	acc  uint64
	nacc uint
}

func (w *bitWriter) writeBits(value uint32, width uint) {
	mask := (uint64(1) << width) - 1
	w.acc = (w.acc << width) | (uint64(value) & mask)
	w.nacc += width
	for w.nacc >= 32 {
		w.nacc -= 32
		var word [4]byte
		byteOrder.PutUint32(word[:], uint32(w.acc>>w.nacc))
		w.out = append(w.out, word[:]...)
	}
}

// bitReader unpacks fields MSB-first from a sequence of big-endian 32-bit
// words.
type bitReader struct {
	data []byte
	pos  int
	acc  uint64
	nacc uint
}

func (r *bitReader) readBits(width uint) uint32 {
	for r.nacc < width {
		word := byteOrder.Uint32(r.data[r.pos : r.pos+4])
		r.pos += 4
		r.acc = (r.acc << 32) | uint64(word)
		r.nacc += 32
	}
	r.nacc -= width
	mask := (uint64(1) << width) - 1
	return uint32((r.acc >> r.nacc) & mask)
}

// signExtend widens a width-bit two's-complement field to a full int32.
func signExtend(raw uint32, width uint) int32 {
	shift := 32 - width
	return int32(raw<<shift) >> shift
}

// encodePacket packs samples (len(samples) == kinds[kindIdx].samples) as a
// single packet and returns its bytes.
func encodePacket(kindIdx int, samples []int32) []byte {
	k := kinds[kindIdx]
	w := &bitWriter{out: make([]byte, 0, k.words*4)}
	w.writeBits(k.prefix, k.prefixBits)
	for _, s := range samples {
		w.writeBits(uint32(s), k.sampleBits)
	}
	return w.out
}

// decodePacket reads one packet from the front of data, returning the
// decoded samples and the number of bytes consumed. data must have at
// least 4 bytes available to read the dispatch prefix.
func decodePacket(data []byte) (samples []int32, consumed int) {
	top4 := byteOrder.Uint32(data[0:4]) >> 28
	k := kinds[indexMap[top4]]

	r := &bitReader{data: data[:k.words*4]}
	r.readBits(k.prefixBits)

	samples = make([]int32, k.samples)
	for i := range samples {
		samples[i] = signExtend(r.readBits(k.sampleBits), k.sampleBits)
	}
	return samples, k.words * 4
}
