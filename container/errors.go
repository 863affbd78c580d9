package container

import "errors"

var (
	// ErrBadMagic is returned when data does not begin with the envelope's
	// magic number.
	ErrBadMagic = errors.New("container: bad magic")
	// ErrUnsupportedVersion is returned for an envelope version this build
	// does not understand.
	ErrUnsupportedVersion = errors.New("container: unsupported envelope version")
	// ErrTruncated is returned when data is shorter than its header
	// declares, or the header itself does not fit.
	ErrTruncated = errors.New("container: truncated envelope")
	// ErrDigestMismatch is returned when the decompressed payload's xxHash64
	// digest does not match the envelope's recorded digest.
	ErrDigestMismatch = errors.New("container: digest mismatch")
)
