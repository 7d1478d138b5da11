// Package xyz parses the XYZ point cloud format: one point per line, as
// "x y z" or "x y z r g b" with color channels in 0..255.
package xyz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// FormatName identifies this grammar in error messages
const FormatName = "XYZ"

// Parse converts an XYZ payload into a raw point record without indices.
// Colors are kept only when every point carries them.
func Parse(data []byte) (*mesh.Raw, error) {
	raw := &mesh.Raw{}
	var colors []geometry.Color
	colored := true

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 && len(fields) != 6 {
			return nil, &mesh.MalformedVertexLineError{
				Line:    i + 1,
				Content: line,
				Reason:  fmt.Sprintf("expected 3 or 6 fields, got %d", len(fields)),
			}
		}

		values := make([]float64, len(fields))
		for j, f := range fields {
			value, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &mesh.MalformedVertexLineError{
					Line:    i + 1,
					Content: line,
					Reason:  fmt.Sprintf("invalid number %q", f),
				}
			}
			values[j] = value
		}

		raw.Positions = append(raw.Positions, geometry.NewVector3(values[0], values[1], values[2]))
		if len(values) == 6 {
			colors = append(colors, geometry.ColorFrom255(values[3], values[4], values[5]))
		} else {
			colored = false
		}
	}

	if len(raw.Positions) == 0 {
		return nil, &mesh.EmptyGeometryError{Format: FormatName}
	}
	if colored {
		raw.Colors = colors
	}

	return raw, nil
}
