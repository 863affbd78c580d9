// Package datatype implements the legacy/modern numeric sample transcoder:
// an 11-tag catalogue of fixed-width sample formats (gain-ranged integers,
// VAX floats, IBM floats, IEEE floats and doubles, byte-swapped integers)
// and a planner that converts an in-place buffer of N samples from any
// supported tag to any other, pivoting through s4 (32-bit signed integer)
// or t8 (IEEE double) as needed.
//
// Every primitive in this package is grounded, bit-for-bit, on the original
// pisces convert/*.c sources: the byte layouts, shift amounts, and bias
// constants below are not independent derivations, they reproduce what that
// C code does when its integer and float types are interpreted as stored on
// a big-endian host.
package datatype
