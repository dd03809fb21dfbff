package campbell

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// markerOperatingPoint opens a new operating-point section; the section is
// named by the text preceding the marker.
const markerOperatingPoint = "operating point"

// parseShapes runs the line state machine over the shape file. A dashed
// header opens a mode subsection; every other non-empty line is a
// participation row `<mode tokens> <amplitude> <phase>%` appended to the
// current (operating point, mode) bucket. Rows outside any section are
// ignored.
func parseShapes(r io.Reader) (map[ShapeKey][]Participation, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	shapes := make(map[ShapeKey][]Participation)
	var operating, mode string
	for n, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if i := strings.Index(line, markerOperatingPoint); i >= 0 {
			operating = strings.TrimSpace(line[:i])
			mode = ""
			continue
		}
		if name, ok := dashedName(line); ok {
			mode = name
			continue
		}
		if operating == "" || mode == "" {
			continue
		}
		row, err := parseParticipation(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		key := ShapeKey{OperatingPoint: operating, Mode: mode}
		shapes[key] = append(shapes[key], row)
	}
	return shapes, nil
}

// dashedName matches a header of the form `--- inner tokens ---` and returns
// the inner tokens.
func dashedName(line string) (string, bool) {
	if !strings.HasPrefix(line, "--") || !strings.HasSuffix(line, "--") {
		return "", false
	}
	inner := strings.TrimSpace(strings.Trim(line, "-"))
	if inner == "" {
		return "", false
	}
	return inner, true
}

// parseParticipation decodes one row: all tokens up to the last two form the
// participating mode name, then amplitude, then phase with a trailing %.
func parseParticipation(line string) (Participation, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Participation{}, fmt.Errorf("participation row %q needs name, amplitude and phase", line)
	}
	amp, err := strconv.ParseFloat(fields[len(fields)-2], 64)
	if err != nil {
		return Participation{}, fmt.Errorf("amplitude: %w", err)
	}
	phase, err := strconv.ParseFloat(strings.TrimSuffix(fields[len(fields)-1], "%"), 64)
	if err != nil {
		return Participation{}, fmt.Errorf("phase: %w", err)
	}
	return Participation{
		Mode:      strings.Join(fields[:len(fields)-2], " "),
		Amplitude: amp,
		Phase:     phase,
	}, nil
}
