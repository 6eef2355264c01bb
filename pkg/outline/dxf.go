package outline

import (
	"bufio"
	"math"
	"strconv"
	"strings"
)

// Point is a 2-D drawing coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Path is an ordered vertex sequence. A closed path carries its first vertex
// duplicated as the final vertex, so ring closure is explicit in the data.
type Path []Point

// Closed reports whether the path's last point equals its first.
func (p Path) Closed() bool {
	return len(p) >= 3 && p[0] == p[len(p)-1]
}

// Outline is the result of parsing a drawing file. Paths preserve drawing
// order; by convention the first path is the outer perimeter. Bounds is nil
// iff Paths is empty or contains no finite coordinate.
type Outline struct {
	Paths  []Path  `json:"paths"`
	Bounds *Bounds `json:"bounds"`
}

// DXF group codes recognized by the parser.
const (
	codeEntity = "0"  // starts a new entity; value names its type
	codeFlags  = "70" // LWPOLYLINE bit flags; bit 0 = closed
	codeX      = "10" // vertex / start X
	codeY      = "20" // vertex / start Y
	codeX2     = "11" // LINE end X
	codeY2     = "21" // LINE end Y
)

// Entity type values the parser commits; all others are skipped.
const (
	entityPolyline = "LWPOLYLINE"
	entityLine     = "LINE"
)

const closedFlag = 1

// Parse extracts LWPOLYLINE and LINE geometry from raw DXF text.
//
// The file is read as a flat sequence of (group-code, value) line pairs. A
// group code of 0 flushes the entity being accumulated and starts the next
// one. Within an LWPOLYLINE an X coordinate is buffered until its paired Y
// arrives, then the vertex is emitted; a set closed flag duplicates the
// first vertex at the end of the committed path. A LINE commits only when
// both its start and end points are complete.
//
// Parse never fails. Non-numeric coordinate values become NaN and are left
// in the path data; the bounds calculation discards them via its finiteness
// guard.
func Parse(text string) Outline {
	var st entityState
	var paths []Path

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for {
		code, ok := scanLine(sc)
		if !ok {
			break
		}
		value, ok := scanLine(sc)
		if !ok {
			break
		}

		if code == codeEntity {
			paths = st.flush(paths)
			st.begin(value)
			continue
		}
		st.field(code, value)
	}
	paths = st.flush(paths)

	return Outline{Paths: paths, Bounds: ComputeBounds(paths)}
}

// scanLine returns the next line with surrounding whitespace trimmed.
func scanLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

// entityState accumulates geometry for the entity currently being read.
type entityState struct {
	kind string // entityPolyline, entityLine, or "" when skipping

	// LWPOLYLINE accumulation
	flags    int
	vertices []Point
	pendingX float64
	hasX     bool

	// LINE accumulation
	start, end         Point
	sx, sy, ex, ey bool
}

// begin resets the state for a new entity named by the 0-code value.
func (st *entityState) begin(value string) {
	*st = entityState{}
	switch value {
	case entityPolyline, entityLine:
		st.kind = value
	}
}

// field applies one (code, value) pair to the current entity.
func (st *entityState) field(code, value string) {
	switch st.kind {
	case entityPolyline:
		switch code {
		case codeFlags:
			st.flags = parseInt(value)
		case codeX:
			st.pendingX = parseFloat(value)
			st.hasX = true
		case codeY:
			x := math.NaN()
			if st.hasX {
				x = st.pendingX
			}
			st.vertices = append(st.vertices, Point{X: x, Y: parseFloat(value)})
			st.hasX = false
		}
	case entityLine:
		switch code {
		case codeX:
			st.start.X = parseFloat(value)
			st.sx = true
		case codeY:
			st.start.Y = parseFloat(value)
			st.sy = true
		case codeX2:
			st.end.X = parseFloat(value)
			st.ex = true
		case codeY2:
			st.end.Y = parseFloat(value)
			st.ey = true
		}
	}
}

// flush commits the accumulated entity to the path list. A polyline with no
// vertices and a line without both endpoints are dropped.
func (st *entityState) flush(paths []Path) []Path {
	switch st.kind {
	case entityPolyline:
		if len(st.vertices) == 0 {
			break
		}
		path := Path(st.vertices)
		if st.flags&closedFlag != 0 {
			path = append(path, path[0])
		}
		paths = append(paths, path)
	case entityLine:
		if st.sx && st.sy && st.ex && st.ey {
			paths = append(paths, Path{st.start, st.end})
		}
	}
	st.kind = ""
	return paths
}

// parseFloat parses a DXF value field. Malformed values become NaN rather
// than aborting the entity; the original tooling this format comes from
// behaves the same way, and bounds calculation filters non-finite points.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseInt parses a flags field; malformed values read as zero flags.
func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
