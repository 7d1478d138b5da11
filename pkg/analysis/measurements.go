package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// EdgeInfo is one triangle edge, resolved to positions
type EdgeInfo struct {
	Start    geometry.Vector3
	End      geometry.Vector3
	StartIdx int
	EndIdx   int
	Length   float64
	Triangle int
}

// MeasurementResult contains model statistics of an assembled geometry
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	VertexCount   int
	TriangleCount int
	HasNormals    bool
	HasColors     bool
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// AnalyzeGeometry collects bounding box, area and edge statistics.
// A point cloud has no edges; its edge lengths are all zero.
func AnalyzeGeometry(g *mesh.Geometry) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   g.BoundingBox(),
		SurfaceArea:   g.SurfaceArea(),
		VertexCount:   g.VertexCount(),
		TriangleCount: g.TriangleCount(),
		HasNormals:    g.HasNormals(),
		HasColors:     g.HasColors(),
		AllEdges:      make([]EdgeInfo, 0, 3*g.TriangleCount()),
	}

	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := 0; i < g.TriangleCount(); i++ {
		tri := g.Indices[3*i : 3*i+3]
		for _, edge := range [3][2]int{{tri[0], tri[1]}, {tri[1], tri[2]}, {tri[2], tri[0]}} {
			start, end := g.Positions[edge[0]], g.Positions[edge[1]]
			length := start.Distance(end)

			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:    start,
				End:      end,
				StartIdx: edge[0],
				EndIdx:   edge[1],
				Length:   length,
				Triangle: i,
			})

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the model
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the model
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count < 0 {
		count = 0
	}
	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindNearestVertex finds the vertex nearest to a given point.
// It returns index -1 for a geometry without positions.
func FindNearestVertex(g *mesh.Geometry, point geometry.Vector3) (int, geometry.Vector3, float64) {
	nearest := -1
	minDistance := math.MaxFloat64

	for i, vertex := range g.Positions {
		distance := point.Distance(vertex)
		if distance < minDistance {
			minDistance = distance
			nearest = i
		}
	}

	if nearest < 0 {
		return -1, geometry.Vector3{}, 0
	}
	return nearest, g.Positions[nearest], minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
