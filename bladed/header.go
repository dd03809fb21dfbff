package bladed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/robert-malhotra/go-bladed/internal/array"
	"github.com/robert-malhotra/go-bladed/internal/dtype"
	"github.com/robert-malhotra/go-bladed/internal/keyword"
)

// Header is the decoded record of one header file. It is immutable after
// parsing except for the payload slot, which the owning ResultSet populates
// lazily and may clear under the unload policy.
type Header struct {
	path    string
	values  map[string]keyword.Value
	payload *array.Dense
}

// ParseHeader decodes header text against the default keyword schema.
func ParseHeader(r io.Reader) (*Header, error) {
	return ParseHeaderSchema(r, keyword.Default())
}

// ParseHeaderSchema decodes header text against a caller-supplied schema.
// Unsplittable lines and unknown keywords are skipped; duplicate keywords
// overwrite. Mandatory-keyword presence is not validated here; use
// [Header.Missing] before treating the header as usable.
func ParseHeaderSchema(r io.Reader, schema keyword.Schema) (*Header, error) {
	h := &Header{values: make(map[string]keyword.Value)}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		d, ok, err := keyword.Decode(sc.Text(), schema)
		if err != nil {
			return nil, classifyDecodeError(err)
		}
		if !ok {
			continue
		}
		h.values[d.Keyword] = d.Value
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	return h, nil
}

// classifyDecodeError maps internal decode failures onto the public error
// taxonomy.
func classifyDecodeError(err error) error {
	switch {
	case errors.Is(err, dtype.ErrUnknownCode):
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	case errors.Is(err, keyword.ErrUnknownKind):
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	default:
		return err
	}
}

// Path returns the header file path, which identifies the record within its
// result set. Empty for headers parsed directly from a reader.
func (h *Header) Path() string {
	return h.path
}

// Name returns the header file name.
func (h *Header) Name() string {
	return filepath.Base(h.path)
}

// Value returns the raw decoded value of a keyword.
func (h *Header) Value(kw string) (keyword.Value, bool) {
	v, ok := h.values[kw]
	return v, ok
}

// Keywords returns the decoded keyword names in sorted order.
func (h *Header) Keywords() []string {
	out := make([]string, 0, len(h.values))
	for kw := range h.values {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

// Str returns a string-kind keyword value.
func (h *Header) Str(kw string) (string, bool) {
	v, ok := h.values[kw]
	if !ok || (v.Kind != keyword.String && v.Kind != keyword.StringStripQuotes) {
		return "", false
	}
	return v.Str, true
}

// Strs returns a string-list-kind keyword value.
func (h *Header) Strs(kw string) ([]string, bool) {
	v, ok := h.values[kw]
	if !ok || (v.Kind != keyword.StringList && v.Kind != keyword.StringListStripQuotes) {
		return nil, false
	}
	return v.Strs, true
}

// Int returns an int-kind keyword value.
func (h *Header) Int(kw string) (int, bool) {
	v, ok := h.values[kw]
	if !ok || v.Kind != keyword.Int {
		return 0, false
	}
	return v.Int, true
}

// Ints returns an int-list-kind keyword value.
func (h *Header) Ints(kw string) ([]int, bool) {
	v, ok := h.values[kw]
	if !ok || v.Kind != keyword.IntList {
		return nil, false
	}
	return v.Ints, true
}

// Float returns a float-kind keyword value.
func (h *Header) Float(kw string) (float64, bool) {
	v, ok := h.values[kw]
	if !ok || v.Kind != keyword.Float {
		return 0, false
	}
	return v.Float, true
}

// Floats returns a float-list-kind keyword value.
func (h *Header) Floats(kw string) ([]float64, bool) {
	v, ok := h.values[kw]
	if !ok || v.Kind != keyword.FloatList {
		return nil, false
	}
	return v.Floats, true
}

// DType returns the payload element type declared by FORMAT.
func (h *Header) DType() (dtype.Code, bool) {
	v, ok := h.values["FORMAT"]
	if !ok || v.Kind != keyword.DTypeCode {
		return dtype.Invalid, false
	}
	return v.DType, true
}

// File returns the payload file name declared by FILE.
func (h *Header) File() string {
	s, _ := h.Str("FILE")
	return s
}

// Content returns the CONTENT label.
func (h *Header) Content() string {
	s, _ := h.Str("CONTENT")
	return s
}

// Rank returns the declared dimensionality (NDIMENS), or 0 if absent.
func (h *Header) Rank() int {
	n, _ := h.Int("NDIMENS")
	return n
}

// Dimensions returns the declared per-axis extents (DIMENS) in file order.
// The in-memory payload shape is this reversed.
func (h *Header) Dimensions() []int {
	d, _ := h.Ints("DIMENS")
	return d
}

// Variables returns the channel names listed by VARIAB.
func (h *Header) Variables() []string {
	v, _ := h.Strs("VARIAB")
	return v
}

// Units returns the per-channel unit codes listed by VARUNIT.
func (h *Header) Units() []string {
	u, _ := h.Strs("VARUNIT")
	return u
}

// Missing returns the mandatory keywords absent from the header, sorted.
// A header with a non-empty Missing set is not usable for payload access.
func (h *Header) Missing() []string {
	var out []string
	for kw := range keyword.Mandatory() {
		if _, ok := h.values[kw]; !ok {
			out = append(out, kw)
		}
	}
	sort.Strings(out)
	return out
}

// Loaded reports whether the payload is currently cached.
func (h *Header) Loaded() bool {
	return h.payload != nil
}
