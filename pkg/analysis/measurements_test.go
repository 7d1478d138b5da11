package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

func TestAnalyzeGeometryCube(t *testing.T) {
	result := AnalyzeGeometry(assemble(t, cubeOFF))

	if result.TriangleCount != 12 {
		t.Errorf("TriangleCount failed: expected 12, got %d", result.TriangleCount)
	}
	if result.EdgeCount != 36 {
		t.Errorf("EdgeCount failed: expected 36, got %d", result.EdgeCount)
	}
	if math.Abs(result.SurfaceArea-24) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 24, got %f", result.SurfaceArea)
	}
	if math.Abs(result.Volume-8) > 1e-10 {
		t.Errorf("Volume failed: expected 8, got %f", result.Volume)
	}
	if math.Abs(result.MinEdgeLength-2) > 1e-10 {
		t.Errorf("MinEdgeLength failed: expected 2, got %f", result.MinEdgeLength)
	}
	if math.Abs(result.MaxEdgeLength-2*math.Sqrt2) > 1e-10 {
		t.Errorf("MaxEdgeLength failed: expected %f, got %f", 2*math.Sqrt2, result.MaxEdgeLength)
	}
	if !result.HasNormals {
		t.Errorf("HasNormals failed: expected computed normals")
	}
}

func TestAnalyzeGeometryPointCloud(t *testing.T) {
	g := &mesh.Geometry{Positions: []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 2, 3),
	}}

	result := AnalyzeGeometry(g)

	if result.EdgeCount != 0 || result.MinEdgeLength != 0 || result.MaxEdgeLength != 0 {
		t.Errorf("point cloud edges failed: expected none, got %d (min %f, max %f)",
			result.EdgeCount, result.MinEdgeLength, result.MaxEdgeLength)
	}
	if result.VertexCount != 2 {
		t.Errorf("VertexCount failed: expected 2, got %d", result.VertexCount)
	}
}

func TestFindEdges(t *testing.T) {
	result := AnalyzeGeometry(assemble(t, cubeOFF))

	longest := FindLongestEdges(result, 3)
	if len(longest) != 3 {
		t.Fatalf("FindLongestEdges failed: expected 3 edges, got %d", len(longest))
	}
	for _, e := range longest {
		if math.Abs(e.Length-2*math.Sqrt2) > 1e-10 {
			t.Errorf("FindLongestEdges failed: expected diagonal, got %f", e.Length)
		}
	}

	shortest := FindShortestEdges(result, 100)
	if len(shortest) != result.EdgeCount {
		t.Errorf("FindShortestEdges failed: expected %d edges, got %d", result.EdgeCount, len(shortest))
	}
	if shortest[0].Length > shortest[len(shortest)-1].Length {
		t.Errorf("FindShortestEdges failed: edges not ascending")
	}

	diagonals := FindEdgesByLength(result, 2.5, 3)
	if len(diagonals) != 12 {
		t.Errorf("FindEdgesByLength failed: expected 12 diagonals, got %d", len(diagonals))
	}
}

func TestFindNearestVertex(t *testing.T) {
	g := assemble(t, cubeOFF)

	idx, vertex, distance := FindNearestVertex(g, geometry.NewVector3(0.9, 1.2, 1))
	if idx != 6 {
		t.Errorf("FindNearestVertex index failed: expected 6, got %d", idx)
	}
	if vertex != geometry.NewVector3(1, 1, 1) {
		t.Errorf("FindNearestVertex vertex failed: expected (1, 1, 1), got %v", vertex)
	}
	if math.Abs(distance-math.Sqrt(0.05)) > 1e-10 {
		t.Errorf("FindNearestVertex distance failed: expected %f, got %f", math.Sqrt(0.05), distance)
	}

	if idx, _, _ := FindNearestVertex(&mesh.Geometry{}, geometry.Vector3{}); idx != -1 {
		t.Errorf("FindNearestVertex on empty geometry failed: expected -1, got %d", idx)
	}
}

func TestFormatVector(t *testing.T) {
	expected := "(1.000000, -2.500000, 0.000000)"
	if got := FormatVector(geometry.NewVector3(1, -2.5, 0)); got != expected {
		t.Errorf("FormatVector failed: expected %s, got %s", expected, got)
	}
	if got := FormatMeasurement(2, ""); got != "2.000000 units" {
		t.Errorf("FormatMeasurement failed: expected 2.000000 units, got %s", got)
	}
}
