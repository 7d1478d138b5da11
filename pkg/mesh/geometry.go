package mesh

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// Kind declares how a source is meant to be presented
type Kind int

const (
	// KindMesh sources describe surfaces and get synthesized topology when they carry none
	KindMesh Kind = iota
	// KindPointCloud sources are presented as discrete points
	KindPointCloud
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindPointCloud:
		return "point cloud"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Raw is an unassembled geometry record as produced by a parser.
// Normals and Colors are either nil or parallel to Positions.
// Indices are grouped in triangles.
type Raw struct {
	Positions []geometry.Vector3
	Normals   []geometry.Vector3
	Colors    []geometry.Color
	Indices   []int
}

// VertexCount returns the number of positions in the record
func (r *Raw) VertexCount() int {
	return len(r.Positions)
}

// Validate checks the buffer invariants of the record
func (r *Raw) Validate() error {
	return validateBuffers(r.Positions, r.Normals, r.Colors, r.Indices)
}

// Part is one sub-geometry of a (possibly multi-part) source
type Part struct {
	Raw        *Raw
	Transform  geometry.Transform
	PointCloud bool
}

// Geometry is the assembled, renderer-ready representation.
// It is produced once per load and must be treated as read-only.
type Geometry struct {
	Positions []geometry.Vector3
	Normals   []geometry.Vector3
	Colors    []geometry.Color
	Indices   []int
	// HasIndex distinguishes a mesh (triangles present) from a point cloud
	HasIndex bool
}

// VertexCount returns the number of vertices
func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

// TriangleCount returns the number of indexed triangles
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// HasNormals reports whether per-vertex normals are attached
func (g *Geometry) HasNormals() bool {
	return g.Normals != nil
}

// HasColors reports whether per-vertex colors are attached
func (g *Geometry) HasColors() bool {
	return g.Colors != nil
}

// Triangle resolves the i-th indexed triangle to positions.
// The triangle normal is the face normal derived from the winding.
func (g *Geometry) Triangle(i int) geometry.Triangle {
	return geometry.TriangleFromVertices(
		g.Positions[g.Indices[3*i]],
		g.Positions[g.Indices[3*i+1]],
		g.Positions[g.Indices[3*i+2]],
	)
}

// Triangles returns all indexed triangles in index order
func (g *Geometry) Triangles() []geometry.Triangle {
	triangles := make([]geometry.Triangle, g.TriangleCount())
	for i := range triangles {
		triangles[i] = g.Triangle(i)
	}
	return triangles
}

// BoundingBox calculates the bounding box over all positions
func (g *Geometry) BoundingBox() geometry.BoundingBox {
	return geometry.BoundingBoxOf(g.Positions)
}

// SurfaceArea calculates the total area of all indexed triangles
func (g *Geometry) SurfaceArea() float64 {
	totalArea := 0.0
	for i := 0; i < g.TriangleCount(); i++ {
		totalArea += g.Triangle(i).Area()
	}
	return totalArea
}

// Validate checks the Geometry invariants
func (g *Geometry) Validate() error {
	if err := validateBuffers(g.Positions, g.Normals, g.Colors, g.Indices); err != nil {
		return err
	}
	if g.HasIndex != (len(g.Indices) > 0) {
		return fmt.Errorf("hasIndex is %t but geometry has %d indices", g.HasIndex, len(g.Indices))
	}
	return nil
}

func validateBuffers(positions, normals []geometry.Vector3, colors []geometry.Color, indices []int) error {
	n := len(positions)
	if normals != nil && len(normals) != n {
		return fmt.Errorf("normal count %d does not match position count %d", len(normals), n)
	}
	if colors != nil && len(colors) != n {
		return fmt.Errorf("color count %d does not match position count %d", len(colors), n)
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("index %d at position %d is out of range [0, %d)", idx, i, n)
		}
	}
	return nil
}
