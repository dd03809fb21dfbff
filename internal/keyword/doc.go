// Package keyword defines the Bladed header keyword schema and decodes
// header lines against it.
//
// A header file is line oriented: each line starts with a keyword followed
// by whitespace and a value whose textual encoding depends on the keyword.
// The schema maps every supported keyword to a decode [Kind]; keywords are
// split into a mandatory set (required for a header to be usable downstream)
// and an optional set.
//
// # Line decoding
//
// [Decode] implements a tri-state outcome:
//
//   - Decoded: the line carried a recognized keyword and its value decoded.
//   - Skip: the line had no keyword/value split, or the keyword is unknown.
//     Skips are expected (statistics blocks, continuation lines, future
//     keywords) and never an error.
//   - Fatal: the keyword was recognized but its value cannot be decoded
//     (malformed scalar, unknown FORMAT code) or the schema maps it to an
//     unimplemented kind ([ErrUnknownKind]).
package keyword
