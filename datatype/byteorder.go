package datatype

import "github.com/sixlettervariables/waveio-codec/endian"

// byteOrder is the wire byte order for every tag's buffer representation
// (spec.md §9 "Endianness": always network byte order, never host-detected).
var byteOrder = endian.GetBigEndianEngine()
