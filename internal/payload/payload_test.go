package payload

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-bladed/internal/dtype"
)

func writeFloat32File(t *testing.T, dir, name string, values []float32) string {
	t.Helper()
	raw := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestLoadReversedShape(t *testing.T) {
	// DIMENS 3 4: three channels, four samples. The file stores channel as
	// the fastest-varying dimension, so the in-memory shape is (4, 3).
	values := make([]float32, 12)
	for i := range values {
		values[i] = float32(i)
	}
	path := writeFloat32File(t, t.TempDir(), "run.$06", values)

	dense, err := Load(path, dtype.Float32, []int{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, dense.Shape())
	// Sample 1, channel 2 is the file's element 1*3+2.
	assert.Equal(t, 5.0, dense.At(1, 2))
}

func TestLoadSizeMismatch(t *testing.T) {
	path := writeFloat32File(t, t.TempDir(), "run.$06", make([]float32, 10))

	_, err := Load(path, dtype.Float32, []int{3, 4})
	assert.ErrorIs(t, err, ErrSizeMismatch)

	// Byte count not a multiple of the element size.
	ragged := filepath.Join(t.TempDir(), "ragged.$06")
	require.NoError(t, os.WriteFile(ragged, make([]byte, 10), 0o644))
	_, err = Load(ragged, dtype.Float64, []int{5})
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.$01"), dtype.Float32, []int{1})
	assert.Error(t, err)
}
