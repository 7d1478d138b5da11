package mesh

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
)

// Assemble merges one or more parsed parts into a single Geometry.
//
// Positions are transformed and concatenated in input order. Normals and colors
// survive only when every part supplies them; a single part without them drops
// the attribute for the whole batch. Indices are offset by the number of
// vertices appended before their part.
//
// When the merged geometry has no indices and no part is a point cloud, the
// identity sequence [0, n) truncated to whole triangles is used. When normals
// are missing and triangles exist, vertex normals are computed with
// ComputeVertexNormals.
func Assemble(parts []Part) (*Geometry, error) {
	if len(parts) == 0 {
		return nil, &AssembleError{Part: -1, Reason: "no parts supplied"}
	}

	vertexCount := 0
	indexCount := 0
	allNormals := true
	allColors := true
	pointCloud := false
	for i, part := range parts {
		if part.Raw == nil {
			return nil, &AssembleError{Part: i, Reason: "missing geometry record"}
		}
		if err := part.Raw.Validate(); err != nil {
			return nil, &AssembleError{Part: i, Reason: err.Error()}
		}
		vertexCount += len(part.Raw.Positions)
		indexCount += len(part.Raw.Indices)
		allNormals = allNormals && part.Raw.Normals != nil
		allColors = allColors && part.Raw.Colors != nil
		pointCloud = pointCloud || part.PointCloud
	}

	g := &Geometry{
		Positions: make([]geometry.Vector3, 0, vertexCount),
	}
	if allNormals {
		g.Normals = make([]geometry.Vector3, 0, vertexCount)
	}
	if allColors {
		g.Colors = make([]geometry.Color, 0, vertexCount)
	}
	if indexCount > 0 {
		g.Indices = make([]int, 0, indexCount)
	}

	for _, part := range parts {
		offset := len(g.Positions)
		identity := part.Transform.IsIdentity()

		for _, p := range part.Raw.Positions {
			if !identity {
				p = part.Transform.ApplyPoint(p)
			}
			g.Positions = append(g.Positions, p)
		}

		if allNormals {
			for _, n := range part.Raw.Normals {
				if !identity {
					n = part.Transform.ApplyDirection(n)
				}
				g.Normals = append(g.Normals, n)
			}
		}

		if allColors {
			g.Colors = append(g.Colors, part.Raw.Colors...)
		}

		for _, idx := range part.Raw.Indices {
			g.Indices = append(g.Indices, idx+offset)
		}
	}

	if len(g.Indices) == 0 && !pointCloud {
		g.Indices = SequentialIndices(len(g.Positions))
	}
	g.HasIndex = len(g.Indices) > 0

	if g.Normals == nil && g.HasIndex {
		g.Normals = ComputeVertexNormals(g.Positions, g.Indices)
	}

	return g, nil
}

// SequentialIndices returns [0, 1, ..., n-1] truncated to a multiple of 3.
// Fewer than three vertices yield nil.
func SequentialIndices(n int) []int {
	n -= n % 3
	if n == 0 {
		return nil
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
