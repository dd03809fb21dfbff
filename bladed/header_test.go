package bladed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-bladed/internal/dtype"
	"github.com/robert-malhotra/go-bladed/internal/keyword"
)

// powprodHeader is a verbatim 2-D generator-variables header as written by
// Bladed, including the statistics block (ULOADS etc.) that the parser must
// skip.
const powprodHeader = "FILE\tpowprod_12ms.$06\n" +
	"ACCESS\tD\n" +
	"FORM\tF\n" +
	"RECL\t4\n" +
	"FORMAT\tR*4\n" +
	"CONTENT\t'POWPROD'\n" +
	"CONFIG\t'STATIONARY'\n" +
	"NDIMENS\t2\n" +
	"DIMENS\t3\t20001\n" +
	"GENLAB\t'Generator variables'\n" +
	"VARIAB\t'Generator torque' 'Electrical power' 'Generator power loss'\n" +
	"VARUNIT\tFL P P\n" +
	"AXISLAB\t'Time'\n" +
	"AXIUNIT\tT\n" +
	"AXIMETH\t2\n" +
	"MIN \t0.0000000E+000\n" +
	"STEP\t9.9999998E-003\n" +
	"NVARS\t0\n" +
	"ULOADS   7.1592855E+006   7.5046815E+006   0.0000000E+000\n" +
	"   7.0032420E+006   7.3428640E+006   0.0000000E+000\n" +
	"MAXTIME   0.0000000E+000   0.0000000E+000   0.0000000E+000\n" +
	"MEAN   7.0889532E+006   7.4307285E+006   0.0000000E+000\n"

func TestParseHeaderRoundTrip(t *testing.T) {
	h, err := ParseHeader(strings.NewReader(powprodHeader))
	require.NoError(t, err)

	assert.Equal(t, "powprod_12ms.$06", h.File())
	assert.Equal(t, "POWPROD", h.Content())
	assert.Equal(t, 2, h.Rank())
	assert.Equal(t, []int{3, 20001}, h.Dimensions())
	assert.Equal(t, []string{"Generator torque", "Electrical power", "Generator power loss"}, h.Variables())
	assert.Equal(t, []string{"FL", "P", "P"}, h.Units())

	code, ok := h.DType()
	require.True(t, ok)
	assert.Equal(t, dtype.Float32, code)

	recl, ok := h.Int("RECL")
	require.True(t, ok)
	assert.Equal(t, 4, recl)

	step, ok := h.Float("STEP")
	require.True(t, ok)
	assert.InDelta(t, 9.9999998e-3, step, 1e-12)

	lab, ok := h.Str("AXISLAB")
	require.True(t, ok)
	assert.Equal(t, "Time", lab)

	// All mandatory keywords present, statistics lines skipped.
	assert.Empty(t, h.Missing())
	assert.NotContains(t, h.Keywords(), "ULOADS")
	assert.NotContains(t, h.Keywords(), "MEAN")

	assert.False(t, h.Loaded())
}

func TestParseHeaderMissingMandatory(t *testing.T) {
	h, err := ParseHeader(strings.NewReader("RECL\t4\nFORMAT\tR*8\n"))
	require.NoError(t, err)

	missing := h.Missing()
	assert.Len(t, missing, 10)
	assert.Contains(t, missing, "VARIAB")
	assert.NotContains(t, missing, "RECL")
}

func TestParseHeaderDuplicateKeywordLastWins(t *testing.T) {
	h, err := ParseHeader(strings.NewReader("RECL\t4\nRECL\t8\n"))
	require.NoError(t, err)
	recl, ok := h.Int("RECL")
	require.True(t, ok)
	assert.Equal(t, 8, recl)
}

func TestParseHeaderUnknownFormat(t *testing.T) {
	_, err := ParseHeader(strings.NewReader("FORMAT\tX\n"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseHeaderSchemaConfigurationError(t *testing.T) {
	broken := keyword.Schema{"FORMAT": keyword.Kind(99)}
	_, err := ParseHeaderSchema(strings.NewReader("FORMAT\tR*4\n"), broken)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestHeaderTypedAccessorMismatch(t *testing.T) {
	h, err := ParseHeader(strings.NewReader("RECL\t4\n"))
	require.NoError(t, err)

	_, ok := h.Str("RECL")
	assert.False(t, ok)
	_, ok = h.Int("STEP")
	assert.False(t, ok)
	_, ok = h.DType()
	assert.False(t, ok)
}
