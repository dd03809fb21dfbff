package dtype

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrUnknownCode is returned when a FORMAT token is not one of the three
// codes this reader can interpret.
var ErrUnknownCode = errors.New("unknown payload format code")

// Code identifies the element type of a binary payload.
type Code int

// Supported element types.
const (
	Invalid Code = iota
	Float32      // R*4
	Float64      // R*8
	Int32        // I*4
)

// Parse maps a FORMAT token to its element type code.
func Parse(token string) (Code, error) {
	switch token {
	case "R*4":
		return Float32, nil
	case "R*8":
		return Float64, nil
	case "I*4":
		return Int32, nil
	default:
		return Invalid, fmt.Errorf("%w: %q", ErrUnknownCode, token)
	}
}

// String returns the Bladed FORMAT token for the code.
func (c Code) String() string {
	switch c {
	case Float32:
		return "R*4"
	case Float64:
		return "R*8"
	case Int32:
		return "I*4"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Size returns the size of a single element in bytes.
func (c Code) Size() int {
	switch c {
	case Float32, Int32:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// Decode reinterprets raw payload bytes as a sequence of elements of the
// given code, widened to float64. The byte length must be an exact multiple
// of the element size.
func Decode(c Code, raw []byte) ([]float64, error) {
	size := c.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: cannot decode code %d", ErrUnknownCode, int(c))
	}
	if len(raw)%size != 0 {
		return nil, fmt.Errorf("payload length %d is not a multiple of element size %d", len(raw), size)
	}

	n := len(raw) / size
	values := make([]float64, n)
	switch c {
	case Float32:
		for i := 0; i < n; i++ {
			bits := binary.LittleEndian.Uint32(raw[i*4:])
			values[i] = float64(math.Float32frombits(bits))
		}
	case Float64:
		for i := 0; i < n; i++ {
			bits := binary.LittleEndian.Uint64(raw[i*8:])
			values[i] = math.Float64frombits(bits)
		}
	case Int32:
		for i := 0; i < n; i++ {
			values[i] = float64(int32(binary.LittleEndian.Uint32(raw[i*4:])))
		}
	}
	return values, nil
}
