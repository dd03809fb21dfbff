// Package dtype handles the payload element types declared by Bladed headers.
//
// A Bladed header declares its payload element type with the FORMAT keyword,
// whose value is one of three codes:
//
//	Code | Meaning
//	-----|--------------------------------
//	R*4  | 4-byte little-endian IEEE float
//	R*8  | 8-byte little-endian IEEE float
//	I*4  | 4-byte little-endian signed int
//
// Any other token means the payload cannot be interpreted by this reader, and
// [Parse] returns [ErrUnknownCode].
//
// All three codes embed exactly into float64, so [Decode] widens every
// payload to a single float64 representation; the original code stays on the
// header for provenance.
package dtype
