package mesh

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
)

// ComputeVertexNormals derives per-vertex normals from indexed triangles.
//
// Each face normal is normalize((p1-p0) x (p2-p0)) and is added, without area or
// angle weighting, to the accumulator of each of its three vertices. The result
// for a vertex is its accumulator at unit length, or the zero vector when the
// vertex is unreferenced or the accumulated normals cancel out.
func ComputeVertexNormals(positions []geometry.Vector3, indices []int) []geometry.Vector3 {
	normals := make([]geometry.Vector3, len(positions))

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		face := geometry.TriangleFromVertices(positions[a], positions[b], positions[c]).Normal

		normals[a] = normals[a].Add(face)
		normals[b] = normals[b].Add(face)
		normals[c] = normals[c].Add(face)
	}

	for i, n := range normals {
		normals[i] = n.Normalize()
	}

	return normals
}
