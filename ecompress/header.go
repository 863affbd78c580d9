package ecompress

// blockHeader is the parsed form of a block's 8-byte header: u16 nbyte, u16
// nsamp, then a 32-bit control word (uncompressed flag, ndiff nibble, low
// 24-bit check value), per spec §3 / e_compression.c's block_e_decomp.
type blockHeader struct {
	nbyte        uint16
	nsamp        uint16
	uncompressed bool
	ndiff        uint8
	check        int32
}

// makeCheck sign-extends the low 24 bits of x, matching the EC_MAKECHECK
// macro: (((x & 0x00ffffff) << 8) >> 8).
func makeCheck(x int32) int32 {
	return (int32(uint32(x)&0x00ffffff) << 8) >> 8
}

// parseHeader reads and validates a block header, enforcing the invariants
// from spec §3: nsamp <= MaxBuffer/4; 8 <= nbyte <= MaxBuffer; nsamp+8 <=
// nbyte <= (nsamp+2)*4.
func parseHeader(buf []byte) (blockHeader, error) {
	if len(buf) < headerSize {
		return blockHeader{}, ErrLengthError
	}

	nbyte := byteOrder.Uint16(buf[0:2])
	nsamp := byteOrder.Uint16(buf[2:4])

	if nsamp > maxSamplesPerBlock {
		return blockHeader{}, ErrSampError
	}
	if nbyte < headerSize || nbyte > MaxBuffer {
		return blockHeader{}, ErrLengthError
	}
	if uint32(nbyte) < uint32(nsamp)+8 || uint32(nbyte) > (uint32(nsamp)+2)*4 {
		return blockHeader{}, ErrSampError
	}

	ctrl := byteOrder.Uint32(buf[4:8])

	return blockHeader{
		nbyte:        nbyte,
		nsamp:        nsamp,
		uncompressed: ctrl&uncompressedFlag != 0,
		ndiff:        uint8((ctrl & 0x0f000000) >> 24),
		check:        makeCheck(int32(ctrl)), //nolint:gosec // intentional reinterpretation, matches ntohl cast in C
	}, nil
}

// putHeader writes an 8-byte header into buf (which must be >= 8 bytes).
func putHeader(buf []byte, nbyte, nsamp uint16, uncompressed bool, ndiff uint8, check int32) {
	byteOrder.PutUint16(buf[0:2], nbyte)
	byteOrder.PutUint16(buf[2:4], nsamp)

	ctrl := (uint32(ndiff) << 24) | (uint32(check) & 0x00ffffff)
	if uncompressed {
		ctrl |= uncompressedFlag
	}
	byteOrder.PutUint32(buf[4:8], ctrl)
}
