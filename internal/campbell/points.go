package campbell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Point-file markers and the legend delimiter preceding the mode name.
const (
	markerNumPoints = "NUMPTS"
	markerNumLines  = "NUMLINES"
	legendDelimiter = " : "
)

// linesPerPoint is the fixed number of lines each point occupies in the top
// part: operating value, frequency, damping, participation token.
const linesPerPoint = 4

// trackBlock describes one 5-line mode-track block of the bottom part.
type trackBlock struct {
	numPoints int
	tracked   []float64
	name      string
}

// parsePoints reads the point file: a NUMPTS-introduced top part of
// sequential points, then a NUMLINES-introduced bottom part of mode-track
// blocks. Points are dealt to tracks in order with a running cursor.
func parsePoints(r io.Reader) ([]Track, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	pos, count, err := findMarker(lines, 0, markerNumPoints)
	if err != nil {
		return nil, err
	}
	points := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		base := pos + 1 + i*linesPerPoint
		if base+linesPerPoint > len(lines) {
			return nil, fmt.Errorf("point %d truncated: need %d lines after %s", i, linesPerPoint, markerNumPoints)
		}
		p, err := parsePoint(lines[base : base+linesPerPoint])
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, p)
	}

	pos, count, err = findMarker(lines, pos+1+len(points)*linesPerPoint, markerNumLines)
	if err != nil {
		return nil, err
	}
	blocks := make([]trackBlock, 0, count)
	for i := 0; i < count; i++ {
		base := pos + 1 + i*5
		if base+5 > len(lines) {
			return nil, fmt.Errorf("track %d truncated: need 5 lines", i)
		}
		b, err := parseTrackBlock(lines[base : base+5])
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", i, err)
		}
		blocks = append(blocks, b)
	}

	// Deal points to tracks sequentially: track k owns the next
	// blocks[k].numPoints entries after track k-1.
	tracks := make([]Track, 0, len(blocks))
	cursor := 0
	for _, b := range blocks {
		if cursor+b.numPoints > len(points) {
			return nil, fmt.Errorf("track %q claims %d points but only %d remain", b.name, b.numPoints, len(points)-cursor)
		}
		tr := Track{
			Name:               b.name,
			Points:             points[cursor : cursor+b.numPoints],
			TrackedFrequencies: b.tracked,
		}
		for i := 0; i < b.numPoints; i++ {
			tr.PointIDs = append(tr.PointIDs, cursor+i)
		}
		tr.Consistent = frequenciesMatch(tr.Points, tr.TrackedFrequencies)
		tracks = append(tracks, tr)
		cursor += b.numPoints
	}
	return tracks, nil
}

// parsePoint decodes the four lines of one point. Values are the last
// whitespace token of each line; the participation token keeps its text with
// quotes stripped.
func parsePoint(lines []string) (Point, error) {
	op, err := lastFloat(lines[0])
	if err != nil {
		return Point{}, fmt.Errorf("operating value: %w", err)
	}
	freq, err := lastFloat(lines[1])
	if err != nil {
		return Point{}, fmt.Errorf("frequency: %w", err)
	}
	damp, err := lastFloat(lines[2])
	if err != nil {
		return Point{}, fmt.Errorf("damping: %w", err)
	}
	part, ok := participationToken(lines[3])
	if !ok {
		return Point{}, fmt.Errorf("participation line is empty")
	}
	return Point{
		Operating:     op,
		Frequency:     freq,
		Damping:       damp,
		Participation: part,
	}, nil
}

// participationToken extracts the quoted participation token, which may
// contain spaces. An unquoted line falls back to its last token.
func participationToken(line string) (string, bool) {
	if i := strings.Index(line, "'"); i >= 0 {
		if j := strings.LastIndex(line, "'"); j > i {
			return line[i+1 : j], true
		}
	}
	tok, ok := lastToken(line)
	return strings.Trim(tok, "'"), ok
}

// parseTrackBlock decodes one 5-line block: header, point count, a
// comma-separated tracked-frequency list, the legend carrying the mode name
// after the final " : " delimiter, and a terminator.
func parseTrackBlock(lines []string) (trackBlock, error) {
	var b trackBlock

	tok, ok := lastToken(lines[1])
	if !ok {
		return b, fmt.Errorf("missing point count")
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return b, fmt.Errorf("point count: %w", err)
	}
	b.numPoints = n

	tok, ok = lastToken(lines[2])
	if !ok {
		return b, fmt.Errorf("missing tracked frequencies")
	}
	for _, s := range strings.Split(tok, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return b, fmt.Errorf("tracked frequency %q: %w", s, err)
		}
		b.tracked = append(b.tracked, f)
	}

	legend := strings.TrimRight(lines[3], " \t")
	if i := strings.LastIndex(legend, legendDelimiter); i >= 0 {
		b.name = strings.TrimSpace(legend[i+len(legendDelimiter):])
	} else {
		b.name = strings.TrimSpace(legend)
	}
	if b.name == "" {
		return b, fmt.Errorf("missing mode name in legend %q", lines[3])
	}
	return b, nil
}

// findMarker scans forward from start for a line whose first token is the
// marker; the marker's count is the line's last token.
func findMarker(lines []string, start int, marker string) (pos, count int, err error) {
	for i := start; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) < 2 || fields[0] != marker {
			continue
		}
		n, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			return 0, 0, fmt.Errorf("%s count: %w", marker, err)
		}
		return i, n, nil
	}
	return 0, 0, fmt.Errorf("marker %s not found", marker)
}

func lastToken(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	return fields[len(fields)-1], true
}

func lastFloat(line string) (float64, error) {
	tok, ok := lastToken(line)
	if !ok {
		return 0, fmt.Errorf("empty line")
	}
	return strconv.ParseFloat(tok, 64)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines, nil
}
