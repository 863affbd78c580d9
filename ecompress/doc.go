// Package ecompress implements e-compression: a block-framed byte stream
// format that applies up to four passes of first differencing to a 32-bit
// integer signal, packs the differences with one of six variable-width
// packet layouts, and falls back to an uncompressed block when a sample's
// magnitude exceeds the packable range.
//
// Every constant, validation order, and bit layout here is grounded on
// _examples/original_source/pisces/io/src/e_compression/e_compression.c and
// its header. The stream format is seekable: Decompress can start at any
// absolute sample offset without decoding the blocks that precede it.
package ecompress
