package datatype

// Tag identifies one of the 11 supported sample formats. Values mirror the
// two-character mnemonics from the original catalogue (convdata.c's
// A2/F4/F8/G2/I2/I4/S2/S3/S4/T4/T8 name constants), packed as ASCII bytes
// rather than as a 4-byte-with-zero-padding long.
type Tag uint16

const (
	A2 Tag = 'a'<<8 | '2' // Aftac gain-ranged 16-bit integer
	F4 Tag = 'f'<<8 | '4' // VAX single-precision float
	F8 Tag = 'f'<<8 | '8' // VAX G-format double-precision float
	G2 Tag = 'g'<<8 | '2' // 2-bit gain code, 16-bit integer
	I2 Tag = 'i'<<8 | '2' // 16-bit integer, byte-swapped vs S2
	I4 Tag = 'i'<<8 | '4' // 32-bit integer, byte-swapped vs S4
	S2 Tag = 's'<<8 | '2' // 16-bit big-endian signed integer
	S3 Tag = 's'<<8 | '3' // 24-bit big-endian signed integer
	S4 Tag = 's'<<8 | '4' // 32-bit big-endian signed integer (pivot type)
	T4 Tag = 't'<<8 | '4' // IEEE single-precision float, big-endian
	T8 Tag = 't'<<8 | '8' // IEEE double-precision float, big-endian (pivot type)
)

// String renders a Tag as its two-character mnemonic.
func (t Tag) String() string {
	if row, ok := catalogue[t]; ok {
		return row.name
	}
	return "??"
}

// Primitive converts n samples packed at the front of buf in place. Callers
// must size buf to hold n samples at whichever of the source or destination
// width is larger; Primitive implementations that widen walk the buffer
// back-to-front and implementations that narrow walk it front-to-back, so
// that a single shared backing array survives the conversion without
// samples clobbering each other. n must be <= len(buf) / width for the
// wider of the two widths.
type Primitive func(buf []byte, n int)

// typeRow is the Go equivalent of convdata.c's "struct typeinfo" row: the
// byte width of the format, whether a direct single-step conversion to/from
// S4 or T8 exists, and the primitives that perform it.
type typeRow struct {
	name    string
	width   int
	haveS4  bool
	haveT8  bool
	fromS4  Primitive // S4 -> this tag
	toS4    Primitive // this tag -> S4
	fromT8  Primitive // T8 -> this tag
	toT8    Primitive // this tag -> T8
}

// catalogue is the Go equivalent of convdata.c's datatype[NDATATYPE] table.
var catalogue = map[Tag]typeRow{
	A2: {name: "a2", width: 2, haveS4: false, haveT8: true, fromT8: t8ToA2, toT8: a2ToT8},
	F4: {name: "f4", width: 4, haveS4: false, haveT8: true, fromT8: t8ToF4, toT8: f4ToT8},
	F8: {name: "f8", width: 8, haveS4: false, haveT8: true, fromT8: t8ToF8, toT8: f8ToT8},
	G2: {name: "g2", width: 2, haveS4: true, haveT8: false, fromS4: s4ToG2, toS4: g2ToS4},
	I2: {name: "i2", width: 2, haveS4: true, haveT8: false, fromS4: s4ToI2, toS4: i2ToS4},
	I4: {name: "i4", width: 4, haveS4: true, haveT8: false, fromS4: s4ToI4, toS4: i4ToS4},
	S2: {name: "s2", width: 2, haveS4: true, haveT8: true, fromS4: s4ToS2, toS4: s2ToS4, fromT8: t8ToS2, toT8: s2ToT8},
	S3: {name: "s3", width: 3, haveS4: true, haveT8: false, fromS4: s4ToS3, toS4: s3ToS4},
	S4: {name: "s4", width: 4, haveS4: false, haveT8: true, fromT8: t8ToS4, toT8: s4ToT8},
	T4: {name: "t4", width: 4, haveS4: true, haveT8: true, fromS4: s4ToT4, toS4: t4ToS4, fromT8: t8ToT4, toT8: t4ToT8},
	T8: {name: "t8", width: 8, haveS4: true, haveT8: false, fromS4: s4ToT8, toS4: t8ToS4},
}

// Length returns the byte width of one sample of tag, or ErrUnknownTag if
// tag is not one of the 11 supported formats. Mirrors convlen().
func Length(tag Tag) (int, error) {
	row, ok := catalogue[tag]
	if !ok {
		return 0, ErrUnknownTag
	}
	return row.width, nil
}
