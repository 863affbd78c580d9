package ecompress

import "github.com/sixlettervariables/waveio-codec/endian"

// byteOrder is the wire byte order for block headers and packet words,
// always network byte order (spec.md §9), never host-detected.
var byteOrder = endian.GetBigEndianEngine()
