// Package payload loads Bladed binary payload files.
//
// A payload file holds one dense numeric array as raw bytes, with no magic,
// header or checksum. Element type and extents come entirely from the
// companion header's FORMAT and DIMENS fields; the in-memory shape is DIMENS
// reversed, because the file's fastest-varying dimension is the first
// declared one. The whole file is materialized at once; there is no partial
// or streamed read path.
package payload

import (
	"errors"
	"fmt"
	"os"

	"github.com/robert-malhotra/go-bladed/internal/array"
	"github.com/robert-malhotra/go-bladed/internal/dtype"
)

// ErrSizeMismatch is returned when the payload byte count does not reshape
// to the declared dimensions.
var ErrSizeMismatch = errors.New("payload size does not match declared dimensions")

// Load reads the payload file at path and reinterprets it as a dense array
// of code elements shaped reverse(dimens).
func Load(path string, code dtype.Code, dimens []int) (*array.Dense, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}

	values, err := dtype.Decode(code, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSizeMismatch, err)
	}

	shape := make([]int, len(dimens))
	for i, d := range dimens {
		shape[len(dimens)-1-i] = d
	}

	dense, err := array.New(shape, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %s holds %d elements for DIMENS %v", ErrSizeMismatch, path, len(values), dimens)
	}
	return dense, nil
}
