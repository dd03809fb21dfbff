// Package bladed provides a pure Go reader for Bladed simulation result
// files.
//
// A run's output is a set of file pairs sharing a prefix: a small ascii
// header <prefix>.%NN describing layout and typing, and a raw binary payload
// holding the samples. Open a [ResultSet] over the result directory, Scan it
// once to discover and parse all headers, then Get variables by the names
// listed in the headers' VARIAB fields. Payloads are loaded lazily on first
// access and, under the unload policy, released after every read.
package bladed

import "errors"

// Common errors
var (
	// ErrNotFound covers a scan that matches no header files and a Get for
	// a variable name absent from every header.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedFormat covers payload typing this reader cannot
	// interpret: an unknown FORMAT code or an NDIMENS outside {2, 3}.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrConfiguration indicates a keyword schema mapping to an
	// unimplemented decode kind. It cannot occur with the shipped schema.
	ErrConfiguration = errors.New("keyword schema configuration error")
	// ErrNotScanned is returned by lookups before Scan has run.
	ErrNotScanned = errors.New("result set not scanned")
)
