// Package off parses the OFF / NOFF plain-text mesh format.
//
// The whole payload is held in memory and parsed in a single pass; there is no
// streaming mode, so memory use grows linearly with the file size.
package off

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// FormatName identifies this grammar in error messages
const FormatName = "OFF"

// line is a significant (non-blank, non-comment) line with its 1-based line number
type line struct {
	number int
	text   string
}

// Parse converts an OFF payload into a raw geometry record.
//
// Positions are returned in file order. Normals are attached only when every
// vertex line carries six fields. Faces with an arity other than three are
// consumed without producing a triangle.
func Parse(text string) (*mesh.Raw, error) {
	lines := significantLines(text)
	next := 0

	take := func() (line, bool) {
		if next >= len(lines) {
			return line{}, false
		}
		l := lines[next]
		next++
		return l, true
	}

	// Magic token
	magic, ok := take()
	if !ok || (magic.text != "OFF" && magic.text != "NOFF") {
		return nil, &mesh.MalformedHeaderError{
			Line:    magic.number,
			Content: magic.text,
			Reason:  "missing or invalid magic token",
		}
	}

	// Counts line
	counts, ok := take()
	if !ok {
		return nil, &mesh.MalformedHeaderError{Reason: "truncated file: missing counts line"}
	}
	nVertices, nFaces, err := parseCounts(counts)
	if err != nil {
		return nil, err
	}
	if nVertices == 0 {
		return nil, &mesh.EmptyGeometryError{Format: FormatName}
	}

	// Declared counts must fit in the remaining lines before anything is allocated
	remaining := len(lines) - next
	if nVertices > remaining || nFaces > remaining-nVertices {
		return nil, &mesh.MalformedHeaderError{
			Line:    counts.number,
			Content: counts.text,
			Reason: fmt.Sprintf("truncated file: header declares %d vertices and %d faces, found %d lines",
				nVertices, nFaces, remaining),
		}
	}

	raw := &mesh.Raw{
		Positions: make([]geometry.Vector3, 0, nVertices),
	}
	var normals []geometry.Vector3
	firstShape := 0

	for i := 0; i < nVertices; i++ {
		l, ok := take()
		if !ok {
			return nil, &mesh.MalformedHeaderError{
				Reason: fmt.Sprintf("truncated file: expected %d vertices, found %d", nVertices, i),
			}
		}

		fields := strings.Fields(l.text)
		if len(fields) != 3 && len(fields) != 6 {
			return nil, &mesh.MalformedVertexLineError{
				Line:    l.number,
				Content: l.text,
				Reason:  fmt.Sprintf("expected 3 or 6 fields, got %d", len(fields)),
			}
		}
		if i == 0 {
			firstShape = len(fields)
			if firstShape == 6 {
				normals = make([]geometry.Vector3, 0, nVertices)
			}
		} else if len(fields) != firstShape {
			return nil, &mesh.MalformedVertexLineError{
				Line:    l.number,
				Content: l.text,
				Reason:  "vertex lines mix positions with and without normals",
			}
		}

		values, err := parseFloats(fields)
		if err != nil {
			return nil, &mesh.MalformedVertexLineError{
				Line:    l.number,
				Content: l.text,
				Reason:  err.Error(),
			}
		}

		raw.Positions = append(raw.Positions, geometry.NewVector3(values[0], values[1], values[2]))
		if normals != nil {
			normals = append(normals, geometry.NewVector3(values[3], values[4], values[5]))
		}
	}
	raw.Normals = normals

	for i := 0; i < nFaces; i++ {
		l, ok := take()
		if !ok {
			return nil, &mesh.MalformedHeaderError{
				Reason: fmt.Sprintf("truncated file: expected %d faces, found %d", nFaces, i),
			}
		}

		triangle, isTriangle, err := parseFace(l, nVertices)
		if err != nil {
			return nil, err
		}
		if isTriangle {
			raw.Indices = append(raw.Indices, triangle[0], triangle[1], triangle[2])
		}
	}

	return raw, nil
}

// significantLines trims every line and drops blank lines and # comments
func significantLines(text string) []line {
	var lines []line
	for i, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		lines = append(lines, line{number: i + 1, text: l})
	}
	return lines
}

func parseCounts(l line) (int, int, error) {
	fields := strings.Fields(l.text)
	if len(fields) < 3 {
		return 0, 0, &mesh.MalformedHeaderError{
			Line:    l.number,
			Content: l.text,
			Reason:  "counts line needs vertex, face and edge counts",
		}
	}

	nVertices, err := strconv.Atoi(fields[0])
	if err != nil || nVertices < 0 {
		return 0, 0, &mesh.MalformedHeaderError{
			Line:    l.number,
			Content: l.text,
			Reason:  fmt.Sprintf("invalid vertex count %q", fields[0]),
		}
	}

	nFaces, err := strconv.Atoi(fields[1])
	if err != nil || nFaces < 0 {
		return 0, 0, &mesh.MalformedHeaderError{
			Line:    l.number,
			Content: l.text,
			Reason:  fmt.Sprintf("invalid face count %q", fields[1]),
		}
	}

	return nVertices, nFaces, nil
}

// parseFace returns the triangle of an arity-3 face. Other arities report isTriangle == false.
func parseFace(l line, nVertices int) (triangle [3]int, isTriangle bool, err error) {
	fields := strings.Fields(l.text)

	malformed := func(reason string) error {
		return &mesh.MalformedFaceLineError{Line: l.number, Content: l.text, Reason: reason}
	}

	arity, convErr := strconv.Atoi(fields[0])
	if convErr != nil {
		return triangle, false, malformed(fmt.Sprintf("invalid face arity %q", fields[0]))
	}
	if arity != 3 {
		return triangle, false, nil
	}
	if len(fields) < 4 {
		return triangle, false, malformed(fmt.Sprintf("triangle needs 3 vertex indices, got %d", len(fields)-1))
	}

	for i := 0; i < 3; i++ {
		idx, convErr := strconv.Atoi(fields[i+1])
		if convErr != nil {
			return triangle, false, malformed(fmt.Sprintf("invalid vertex index %q", fields[i+1]))
		}
		if idx < 0 || idx >= nVertices {
			return triangle, false, malformed(fmt.Sprintf("vertex index %d out of range [0, %d)", idx, nVertices))
		}
		triangle[i] = idx
	}

	return triangle, true, nil
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, f := range fields {
		value, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		values[i] = value
	}
	return values, nil
}
