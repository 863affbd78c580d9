package container

import (
	"github.com/sixlettervariables/waveio-codec/internal/hash"
	"github.com/sixlettervariables/waveio-codec/internal/pool"
)

// envelopeMagic is the big-endian encoding of "WVEC".
const envelopeMagic uint32 = 0x57564543

const envelopeVersion uint8 = 1

// headerSize is magic(4) + version(1) + comp(1) + rawLen(4) + digest(8).
const headerSize = 18

// Wrap compresses stream with the codec for comp, computes the xxHash64
// digest of the uncompressed stream, and returns the framed envelope
// described in SPEC_FULL.md §3. stream is typically the output of
// ecompress.Compress; Wrap never inspects its contents.
func Wrap(stream []byte, comp CompressionType) ([]byte, error) {
	codec, err := GetCodec(comp)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(stream)
	if err != nil {
		return nil, err
	}

	bb := pool.GetByteBuffer()
	defer pool.PutByteBuffer(bb)
	bb.Grow(headerSize + len(payload))

	var header [headerSize]byte
	byteOrder.PutUint32(header[0:4], envelopeMagic)
	header[4] = envelopeVersion
	header[5] = byte(comp)
	byteOrder.PutUint32(header[6:10], uint32(len(stream))) //nolint:gosec
	byteOrder.PutUint64(header[10:18], hash.Digest(stream))

	bb.Write(header[:])
	bb.Write(payload)

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())
	return out, nil
}

// Unwrap parses an envelope produced by Wrap, decompresses its payload, and
// verifies the digest against the decompressed bytes before returning them.
// The returned bytes are the original e-compressed stream, unchanged and
// ready for ecompress.Decompress.
func Unwrap(data []byte) ([]byte, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if byteOrder.Uint32(data[0:4]) != envelopeMagic {
		return nil, ErrBadMagic
	}
	if data[4] != envelopeVersion {
		return nil, ErrUnsupportedVersion
	}

	comp := CompressionType(data[5])
	rawLen := byteOrder.Uint32(data[6:10])
	digest := byteOrder.Uint64(data[10:18])

	codec, err := GetCodec(comp)
	if err != nil {
		return nil, err
	}

	stream, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, err
	}
	if uint32(len(stream)) != rawLen { //nolint:gosec
		return nil, ErrTruncated
	}
	if hash.Digest(stream) != digest {
		return nil, ErrDigestMismatch
	}
	return stream, nil
}
