package container

import "github.com/sixlettervariables/waveio-codec/endian"

// byteOrder is the envelope header's wire byte order, always network byte
// order regardless of host architecture.
var byteOrder = endian.GetBigEndianEngine()
