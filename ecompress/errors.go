package ecompress

import "errors"

// Sentinel errors mirror the stable error codes from e_compression.h:
// LENGTH_ERROR, SAMP_ERROR, DIFF_ERROR, CHECK_ERROR, ARG_ERROR, TYPE_ERROR.
// There is no Go equivalent of MEMORY_ERROR: scratch buffers come from
// internal/pool and make(), neither of which fails a call the way a
// caller-supplied fixed allocation could.
var (
	ErrLengthError = errors.New("ecompress: block length invariant violated")
	ErrSampError   = errors.New("ecompress: sample count invariant violated")
	ErrDiffError   = errors.New("ecompress: differencing depth out of range")
	ErrCheckError  = errors.New("ecompress: check value does not match last sample")
	ErrArgError    = errors.New("ecompress: invalid argument")
	ErrTypeError   = errors.New("ecompress: unrecognized datatype tag")
)
