package ecompress

// BlockFlag selects how the final block of a stream is sized.
type BlockFlag uint8

const (
	// FullEnd pads the terminal block out to its nominal budget size.
	FullEnd BlockFlag = 0
	// ShortEnd truncates the terminal block to the bytes actually used.
	ShortEnd BlockFlag = 1
)

const (
	// MaxBuffer is the largest block byte length a header may declare, and
	// the scratch capacity the reference decoder/encoder reserve per block
	// (e_compression.h EC_MAX_BUFFER).
	MaxBuffer = 16384
	// MaxNdiff is the largest differencing depth a block header may carry.
	MaxNdiff = 4

	headerSize = 8
	// maxSamplesPerBlock bounds nsamp to EC_MAX_BUFFER/4 words.
	maxSamplesPerBlock = MaxBuffer / 4

	uncompressedFlag uint32 = 0x10000000
)
