package bladed

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-bladed/internal/array"
	"github.com/robert-malhotra/go-bladed/internal/campbell"
	"github.com/robert-malhotra/go-bladed/internal/payload"
)

// Array is the dense numeric array type returned by dataset reads.
type Array = array.Dense

// CampbellDiagram is the sentinel dataset name that bypasses the binary
// pipeline and returns the run's Campbell/modal ascii data instead.
const CampbellDiagram = "Campbell diagram"

// ResultSet provides name-indexed access to one simulation run's output.
type ResultSet struct {
	dir     string
	prefix  string
	unload  bool
	logger  *zap.Logger
	headers []*Header // sorted by path; nil until Scan
}

// Result is the outcome of one Get call. Data holds the requested values;
// Header is set for rank-3 data, whose consumers need the axis metadata
// (AXISLAB/AXIUNIT/AXIVAL/AXITICK) it carries; Campbell is set only for the
// CampbellDiagram sentinel name.
type Result struct {
	Data     *Array
	Header   *Header
	Campbell *Campbell
}

// Open creates a ResultSet for the result files under dir sharing prefix.
// Call Scan before Get.
func Open(dir, prefix string, opts ...Option) *ResultSet {
	rs := &ResultSet{
		dir:    dir,
		prefix: prefix,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// Dir returns the result directory.
func (rs *ResultSet) Dir() string {
	return rs.dir
}

// Prefix returns the result file prefix.
func (rs *ResultSet) Prefix() string {
	return rs.prefix
}

// Scan discovers and parses all header files matching <dir>/<prefix>.%*.
// Results are not read here; every payload slot starts empty. Zero matches
// is an ErrNotFound condition.
func (rs *ResultSet) Scan() error {
	pattern := filepath.Join(rs.dir, rs.prefix+".%*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing headers: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("%w: no header files match %s", ErrNotFound, pattern)
	}
	// Sorted scan order makes variable resolution deterministic when a name
	// appears in more than one header.
	sort.Strings(matches)

	headers := make([]*Header, 0, len(matches))
	for _, path := range matches {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening header: %w", err)
		}
		h, err := ParseHeader(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing header %s: %w", path, err)
		}
		h.path = path
		headers = append(headers, h)
		rs.logger.Debug("parsed header",
			zap.String("path", path),
			zap.String("content", h.Content()),
			zap.Int("variables", len(h.Variables())))
	}
	rs.headers = headers
	return nil
}

// Headers returns the parsed header records in scan order.
func (rs *ResultSet) Headers() []*Header {
	return rs.headers
}

// Variables returns every variable name known to the result set, in scan
// order.
func (rs *ResultSet) Variables() []string {
	var out []string
	for _, h := range rs.headers {
		out = append(out, h.Variables()...)
	}
	return out
}

// Get returns the data for one named variable, reading the payload from the
// binary result file if it is not yet cached. The returned array is always a
// copy; callers cannot mutate the cache through it. The sentinel name
// CampbellDiagram returns the run's Campbell data instead.
func (rs *ResultSet) Get(name string) (*Result, error) {
	if name == CampbellDiagram {
		c, err := rs.readCampbell()
		if err != nil {
			return nil, err
		}
		return &Result{Campbell: c}, nil
	}

	h, i, err := rs.resolve(name)
	if err != nil {
		return nil, err
	}

	if h.payload == nil {
		if err := rs.loadPayload(h); err != nil {
			return nil, err
		}
	}

	var data *Array
	switch h.Rank() {
	case 2:
		data, err = h.payload.Column(i)
	case 3:
		data, err = h.payload.Channel(i)
	}
	// The unload policy drops the cached payload after every access,
	// whether or not this call loaded it.
	if rs.unload {
		h.payload = nil
	}
	if err != nil {
		return nil, fmt.Errorf("slicing %s: %w", h.Name(), err)
	}

	res := &Result{Data: data}
	if h.Rank() == 3 {
		res.Header = h
	}
	return res, nil
}

// GetSeries returns the data array for a variable, for callers that do not
// need axis metadata.
func (rs *ResultSet) GetSeries(name string) (*Array, error) {
	res, err := rs.Get(name)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetGrid returns a rank-3 variable's data together with its header.
func (rs *ResultSet) GetGrid(name string) (*Array, *Header, error) {
	res, err := rs.Get(name)
	if err != nil {
		return nil, nil, err
	}
	if res.Header == nil {
		return nil, nil, fmt.Errorf("%w: %q is not a 3-D dataset", ErrUnsupportedFormat, name)
	}
	return res.Data, res.Header, nil
}

// GetCampbell returns the run's Campbell data. A run without Campbell files
// yields an empty, unavailable diagram, not an error.
func (rs *ResultSet) GetCampbell() (*Campbell, error) {
	return rs.readCampbell()
}

// resolve finds the header listing name in its VARIAB field and the name's
// zero-based channel position. Headers are visited in scan order and the
// first match wins.
func (rs *ResultSet) resolve(name string) (*Header, int, error) {
	if rs.headers == nil {
		return nil, 0, ErrNotScanned
	}
	for _, h := range rs.headers {
		vars, ok := h.Strs("VARIAB")
		if !ok {
			continue
		}
		for i, v := range vars {
			if v != name {
				continue
			}
			switch h.Rank() {
			case 2, 3:
				return h, i, nil
			default:
				return nil, 0, fmt.Errorf("%w: NDIMENS %d in %s, only 2-D and 3-D data is supported",
					ErrUnsupportedFormat, h.Rank(), h.Name())
			}
		}
	}
	return nil, 0, fmt.Errorf("%w: variable %q not listed in any header", ErrNotFound, name)
}

// loadPayload reads and decodes the binary payload for one header.
func (rs *ResultSet) loadPayload(h *Header) error {
	code, ok := h.DType()
	if !ok {
		return fmt.Errorf("%w: header %s has no FORMAT", ErrUnsupportedFormat, h.Name())
	}
	dimens := h.Dimensions()
	if len(dimens) == 0 {
		return fmt.Errorf("%w: header %s has no DIMENS", ErrUnsupportedFormat, h.Name())
	}
	path := filepath.Join(rs.dir, h.File())
	dense, err := payload.Load(path, code, dimens)
	if err != nil {
		return fmt.Errorf("loading payload for %s: %w", h.Name(), err)
	}
	h.payload = dense
	rs.logger.Debug("loaded payload",
		zap.String("path", path),
		zap.String("format", code.String()),
		zap.Ints("dimens", dimens))
	return nil
}

func (rs *ResultSet) readCampbell() (*Campbell, error) {
	diag, err := campbell.Read(rs.dir, rs.prefix)
	if err != nil {
		return nil, err
	}
	if !diag.Available {
		rs.logger.Debug("campbell point file not present", zap.String("prefix", rs.prefix))
	}
	for _, tr := range diag.Tracks {
		if !tr.Consistent {
			rs.logger.Warn("campbell track frequencies disagree with point data",
				zap.String("mode", tr.Name),
				zap.Int("points", len(tr.Points)))
		}
	}
	return diag, nil
}
