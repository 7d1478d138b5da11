// Package stl parses ASCII and binary STL payloads into unindexed triangle soup.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// FormatName identifies this grammar in error messages
const FormatName = "STL"

const (
	headerSize = 80
	facetSize  = 50
)

// facet is the 50-byte little-endian record of a binary STL
type facet struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// Parse reads an STL payload and returns its triangles as a raw record.
// It automatically detects whether the payload is ASCII or binary.
//
// Every facet contributes three consecutive positions; the facet normal is
// repeated on each of them. No indices are emitted.
func Parse(data []byte) (*mesh.Raw, error) {
	var raw *mesh.Raw
	var err error
	if isBinary(data) {
		raw, err = parseBinary(data)
	} else {
		raw, err = parseASCII(data)
	}
	if err != nil {
		return nil, err
	}

	if len(raw.Positions) == 0 {
		return nil, &mesh.EmptyGeometryError{Format: FormatName}
	}
	return raw, nil
}

// isBinary prefers the binary layout whenever the declared triangle count
// matches the payload size, since some exporters write "solid" into the header.
func isBinary(data []byte) bool {
	if len(data) >= headerSize+4 {
		count := binary.LittleEndian.Uint32(data[headerSize : headerSize+4])
		if int64(headerSize+4)+int64(count)*facetSize == int64(len(data)) {
			return true
		}
	}
	return !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid"))
}

func addFacet(raw *mesh.Raw, normal, v1, v2, v3 geometry.Vector3) {
	triangle := geometry.NewTriangle(normal, v1, v2, v3)
	if triangle.Normal == (geometry.Vector3{}) {
		triangle.Normal = triangle.CalculateNormal()
	}

	raw.Positions = append(raw.Positions, triangle.V1, triangle.V2, triangle.V3)
	raw.Normals = append(raw.Normals, triangle.Normal, triangle.Normal, triangle.Normal)
}

// parseASCII parses an ASCII STL payload
func parseASCII(data []byte) (*mesh.Raw, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	// A single line may span the whole payload
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	raw := &mesh.Raw{}

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3
	facetLine := 0
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "facet":
			facetLine = lineNumber
			vertices = vertices[:0]
			currentNormal = geometry.Vector3{}
			if len(fields) >= 5 && fields[1] == "normal" {
				n, err := parseVector(fields[2:5])
				if err != nil {
					return nil, &mesh.MalformedFaceLineError{Line: lineNumber, Content: line, Reason: err.Error()}
				}
				currentNormal = n
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, &mesh.MalformedVertexLineError{
					Line:    lineNumber,
					Content: line,
					Reason:  fmt.Sprintf("expected 3 coordinates, got %d", len(fields)-1),
				}
			}
			v, err := parseVector(fields[1:4])
			if err != nil {
				return nil, &mesh.MalformedVertexLineError{Line: lineNumber, Content: line, Reason: err.Error()}
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, &mesh.MalformedFaceLineError{
					Line:    facetLine,
					Content: line,
					Reason:  fmt.Sprintf("facet has %d vertices, expected 3", len(vertices)),
				}
			}
			addFacet(raw, currentNormal, vertices[0], vertices[1], vertices[2])
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return raw, nil
}

// parseBinary parses a binary STL payload
func parseBinary(data []byte) (*mesh.Raw, error) {
	if len(data) < headerSize+4 {
		return nil, &mesh.MalformedHeaderError{
			Reason: fmt.Sprintf("truncated file: binary STL needs %d header bytes, got %d", headerSize+4, len(data)),
		}
	}

	triangleCount := binary.LittleEndian.Uint32(data[headerSize : headerSize+4])
	available := (len(data) - headerSize - 4) / facetSize
	if int64(triangleCount) > int64(available) {
		return nil, &mesh.MalformedHeaderError{
			Reason: fmt.Sprintf("truncated file: header declares %d triangles, payload holds %d", triangleCount, available),
		}
	}

	raw := &mesh.Raw{
		Positions: make([]geometry.Vector3, 0, 3*int(triangleCount)),
		Normals:   make([]geometry.Vector3, 0, 3*int(triangleCount)),
	}

	reader := bytes.NewReader(data[headerSize+4:])
	for i := uint32(0); i < triangleCount; i++ {
		var f facet
		if err := binary.Read(reader, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		addFacet(raw,
			fromFloat32(f.Normal),
			fromFloat32(f.Vertices[0]),
			fromFloat32(f.Vertices[1]),
			fromFloat32(f.Vertices[2]),
		)
	}

	return raw, nil
}

func fromFloat32(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var values [3]float64
	for i, f := range fields {
		value, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid number %q", f)
		}
		values[i] = value
	}
	return geometry.NewVector3(values[0], values[1], values[2]), nil
}
