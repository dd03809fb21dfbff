package dtype

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		code  Code
		size  int
	}{
		{"R*4", Float32, 4},
		{"R*8", Float64, 8},
		{"I*4", Int32, 4},
	}
	for _, tt := range tests {
		c, err := Parse(tt.token)
		require.NoError(t, err, tt.token)
		assert.Equal(t, tt.code, c)
		assert.Equal(t, tt.size, c.Size())
		assert.Equal(t, tt.token, c.String())
	}
}

func TestParseUnknown(t *testing.T) {
	for _, token := range []string{"X", "I*3", "R*16", ""} {
		_, err := Parse(token)
		assert.ErrorIs(t, err, ErrUnknownCode, token)
	}
}

func TestDecodeFloat32(t *testing.T) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint32(raw[0:], math.Float32bits(1.5))
	binary.LittleEndian.PutUint32(raw[4:], math.Float32bits(-2.25))

	values, err := Decode(Float32, raw)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2.25}, values)
}

func TestDecodeFloat64(t *testing.T) {
	raw := make([]byte, 16)
	binary.LittleEndian.PutUint64(raw[0:], math.Float64bits(3.14159))
	binary.LittleEndian.PutUint64(raw[8:], math.Float64bits(-1e12))

	values, err := Decode(Float64, raw)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.14159, -1e12}, values)
}

func TestDecodeInt32(t *testing.T) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint32(raw[0:], uint32(42))
	binary.LittleEndian.PutUint32(raw[4:], uint32(0xFFFFFFFF)) // -1

	values, err := Decode(Int32, raw)
	require.NoError(t, err)
	assert.Equal(t, []float64{42, -1}, values)
}

func TestDecodeBadLength(t *testing.T) {
	_, err := Decode(Float64, make([]byte, 12))
	assert.Error(t, err)
}

func TestDecodeInvalidCode(t *testing.T) {
	_, err := Decode(Invalid, []byte{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrUnknownCode)
}
