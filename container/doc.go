// Package container wraps an already e-compressed byte stream with an
// optional secondary byte-level compression stage and an xxHash64 integrity
// digest, for callers that persist or transmit e-compressed data and want an
// outer checksum/compression layer. It never inspects or changes
// e-compression semantics: Wrap and Unwrap operate purely on the opaque
// bytes ecompress.Compress/Decompress produce and consume.
package container
