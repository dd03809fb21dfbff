package keyword

import "github.com/robert-malhotra/go-bladed/internal/dtype"

// Kind selects how a keyword's value text is decoded.
type Kind int

// Supported decode kinds.
const (
	String Kind = iota
	StringStripQuotes
	StringList
	StringListStripQuotes
	Int
	IntList
	Float
	FloatList
	DTypeCode
)

// Schema maps header keywords to their decode kinds.
type Schema map[string]Kind

// mandatory keywords must all be present for a header to be usable
// downstream. Presence is not enforced at parse time.
var mandatory = Schema{
	"FILE":    String,
	"ACCESS":  String,
	"FORM":    String,
	"RECL":    Int,
	"FORMAT":  DTypeCode,
	"CONTENT": StringStripQuotes,
	"CONFIG":  StringStripQuotes,
	"NDIMENS": Int,
	"DIMENS":  IntList,
	"GENLAB":  StringStripQuotes,
	"VARIAB":  StringListStripQuotes,
	"VARUNIT": StringList,
}

var optional = Schema{
	"AXIVAL":    FloatList,
	"AXISLAB":   StringStripQuotes,
	"AXIUNIT":   String,
	"AXIMETH":   Int,
	"AXITICK":   StringListStripQuotes,
	"MIN":       Float,
	"STEP":      Float,
	"NVARS":     Int,
	"HEADREC":   Int,
	"VAROFFSET": Float,
	"VARSCALE":  FloatList,
}

// Mandatory returns a copy of the mandatory keyword schema.
func Mandatory() Schema {
	return clone(mandatory)
}

// Optional returns a copy of the optional keyword schema.
func Optional() Schema {
	return clone(optional)
}

// Default returns the union of the mandatory and optional schemas.
func Default() Schema {
	s := clone(mandatory)
	for k, v := range optional {
		s[k] = v
	}
	return s
}

// IsMandatory reports whether kw belongs to the mandatory set.
func IsMandatory(kw string) bool {
	_, ok := mandatory[kw]
	return ok
}

func clone(s Schema) Schema {
	out := make(Schema, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Value is the decoded value of one header keyword. Kind selects which field
// is populated; the others stay at their zero values.
type Value struct {
	Kind   Kind
	Str    string
	Strs   []string
	Int    int
	Ints   []int
	Float  float64
	Floats []float64
	DType  dtype.Code
}

// Interface returns the populated field as a plain Go value, suitable for
// generic serialization. DTypeCode values render as their FORMAT token.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case String, StringStripQuotes:
		return v.Str
	case StringList, StringListStripQuotes:
		return v.Strs
	case Int:
		return v.Int
	case IntList:
		return v.Ints
	case Float:
		return v.Float
	case FloatList:
		return v.Floats
	case DTypeCode:
		return v.DType.String()
	default:
		return nil
	}
}
