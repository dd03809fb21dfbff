package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-bladed/internal/dtype"
)

func decodeOK(t *testing.T, line string) Decoded {
	t.Helper()
	d, ok, err := Decode(line, Default())
	require.NoError(t, err)
	require.True(t, ok, "expected line to decode: %q", line)
	return d
}

func TestDecodeWhitespaceVariants(t *testing.T) {
	// Tabs, spaces, trailing newline and mixed runs must all split the same.
	for _, line := range []string{
		"RECL 4",
		"RECL 4\n",
		"RECL\t4",
		"RECL\t  4",
		"RECL \t 4\r\n",
	} {
		d := decodeOK(t, line)
		assert.Equal(t, "RECL", d.Keyword, line)
		assert.Equal(t, 4, d.Value.Int, line)
	}
}

func TestDecodeKinds(t *testing.T) {
	d := decodeOK(t, "RECL\t4")
	assert.Equal(t, 4, d.Value.Int)

	d = decodeOK(t, "DIMENS\t1 2")
	assert.Equal(t, []int{1, 2}, d.Value.Ints)

	d = decodeOK(t, "FILE\tpowprod_12ms.$06")
	assert.Equal(t, "powprod_12ms.$06", d.Value.Str)

	d = decodeOK(t, "CONTENT\t'POWPROD'")
	assert.Equal(t, "POWPROD", d.Value.Str)

	d = decodeOK(t, "VARUNIT\tFL P P")
	assert.Equal(t, []string{"FL", "P", "P"}, d.Value.Strs)

	d = decodeOK(t, "VARIAB\t'Generator torque' 'Electrical power' 'Generator power loss'")
	assert.Equal(t, []string{"Generator torque", "Electrical power", "Generator power loss"}, d.Value.Strs)

	d = decodeOK(t, "MIN \t0.0000000E+000")
	assert.InDelta(t, 0.0, d.Value.Float, 1e-9)

	d = decodeOK(t, "AXIVAL \t0.0000000E+000 1.0000E+000")
	require.Len(t, d.Value.Floats, 2)
	assert.InDelta(t, 0.0, d.Value.Floats[0], 1e-9)
	assert.InDelta(t, 1.0, d.Value.Floats[1], 1e-9)
}

func TestDecodeFormatCodes(t *testing.T) {
	tests := []struct {
		line string
		code dtype.Code
	}{
		{"FORMAT\tR*4", dtype.Float32},
		{"FORMAT\tR*8", dtype.Float64},
		{"FORMAT\tI*4", dtype.Int32},
	}
	for _, tt := range tests {
		d := decodeOK(t, tt.line)
		assert.Equal(t, tt.code, d.Value.DType, tt.line)
	}
}

func TestDecodeUnknownFormatFatal(t *testing.T) {
	for _, line := range []string{"FORMAT\tX", "FORMAT\tI*3"} {
		_, _, err := Decode(line, Default())
		assert.ErrorIs(t, err, dtype.ErrUnknownCode, line)
	}
}

func TestDecodeSkips(t *testing.T) {
	// Single token: skip.
	_, ok, err := Decode("ABC", Default())
	require.NoError(t, err)
	assert.False(t, ok)

	// Known keyword with nothing after it: skip.
	_, ok, err = Decode("RECL   ", Default())
	require.NoError(t, err)
	assert.False(t, ok)

	// Unknown keyword: skip.
	_, ok, err = Decode("A B", Default())
	require.NoError(t, err)
	assert.False(t, ok)

	// Statistics continuation line starting with whitespace: first token is
	// a number, not a keyword, so the line is skipped.
	_, ok, err = Decode("   7.0032420E+006   7.3428640E+006   0.0000000E+000", Default())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeMalformedScalarFatal(t *testing.T) {
	_, _, err := Decode("RECL\tabc", Default())
	assert.Error(t, err)

	_, _, err = Decode("DIMENS\t3 x", Default())
	assert.Error(t, err)
}

func TestDecodeUnknownKindFatal(t *testing.T) {
	broken := Schema{"FORMAT": Kind(99)}
	_, _, err := Decode("FORMAT\tI*3", broken)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSchemaSets(t *testing.T) {
	m := Mandatory()
	for _, kw := range []string{
		"FILE", "ACCESS", "FORM", "RECL", "FORMAT", "CONTENT",
		"CONFIG", "NDIMENS", "DIMENS", "GENLAB", "VARIAB", "VARUNIT",
	} {
		assert.Contains(t, m, kw)
		assert.True(t, IsMandatory(kw), kw)
	}
	assert.Len(t, m, 12)

	o := Optional()
	for _, kw := range []string{
		"AXIVAL", "AXISLAB", "AXIUNIT", "AXIMETH", "AXITICK",
		"MIN", "STEP", "NVARS", "HEADREC", "VAROFFSET", "VARSCALE",
	} {
		assert.Contains(t, o, kw)
		assert.False(t, IsMandatory(kw), kw)
	}
	assert.Len(t, o, 11)

	assert.Len(t, Default(), 23)
}

func TestValueInterface(t *testing.T) {
	d := decodeOK(t, "FORMAT\tR*8")
	assert.Equal(t, "R*8", d.Value.Interface())

	d = decodeOK(t, "DIMENS\t3 20001")
	assert.Equal(t, []int{3, 20001}, d.Value.Interface())
}
