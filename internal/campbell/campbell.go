// Package campbell parses the ascii Campbell-diagram companion files of a
// Bladed run.
//
// Two files share the result prefix: the point file <prefix>.$CM carries
// per-point modal data followed by mode-track metadata, and the shape file
// <prefix>.$shape carries per-operating-point participation shapes. Both are
// optional per run; a missing file yields an empty result flagged as
// unavailable rather than an error.
package campbell

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Point is one operating point of a tracked mode.
type Point struct {
	Operating     float64
	Frequency     float64
	Damping       float64
	Participation string
}

// Track is one mode tracked across a sweep of operating points.
type Track struct {
	Name string
	// PointIDs are the zero-based positions, in the point file's top part,
	// of the points this track consumed.
	PointIDs []int
	Points   []Point
	// TrackedFrequencies come from the track metadata block and should
	// match the per-point frequencies above.
	TrackedFrequencies []float64
	// Consistent is false when the per-point and tracked frequency
	// sequences disagree. The mismatch is a data-quality warning, not an
	// error.
	Consistent bool
}

// ShapeKey addresses one participation-shape bucket.
type ShapeKey struct {
	OperatingPoint string
	Mode           string
}

// Participation is one row of a participation shape: how much another mode
// contributes to the keyed mode's deflection.
type Participation struct {
	Mode      string
	Amplitude float64
	Phase     float64
}

// Diagram is the combined Campbell data of one run.
type Diagram struct {
	// Available reports whether the point file was present.
	Available bool
	Tracks    []Track
	// ShapesAvailable reports whether the shape file was present.
	ShapesAvailable bool
	Shapes          map[ShapeKey][]Participation
}

// Read parses both companion files for the given result prefix. Absence of
// either file is not an error.
func Read(dir, prefix string) (*Diagram, error) {
	diag := &Diagram{}

	pointPath := filepath.Join(dir, prefix+".$CM")
	f, err := os.Open(pointPath)
	switch {
	case err == nil:
		diag.Tracks, err = parsePoints(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", pointPath, err)
		}
		diag.Available = true
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("opening point file: %w", err)
	}

	shapePath := filepath.Join(dir, prefix+".$shape")
	f, err = os.Open(shapePath)
	switch {
	case err == nil:
		diag.Shapes, err = parseShapes(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", shapePath, err)
		}
		diag.ShapesAvailable = true
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("opening shape file: %w", err)
	}

	return diag, nil
}

// frequenciesMatch compares the per-point frequency sequence with the
// tracked one using a small relative tolerance.
func frequenciesMatch(points []Point, tracked []float64) bool {
	if len(points) != len(tracked) {
		return false
	}
	for i, p := range points {
		tol := 1e-6 * math.Max(1, math.Abs(tracked[i]))
		if math.Abs(p.Frequency-tracked[i]) > tol {
			return false
		}
	}
	return true
}
