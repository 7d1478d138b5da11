// Package analysis computes spatial metrics and model statistics of an
// assembled geometry.
package analysis

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/viewer"
)

// Metrics is the spatial summary used to initialize a scene
type Metrics struct {
	BoundingBox geometry.BoundingBox `json:"bbox" yaml:"bbox"`
	Center      geometry.Vector3     `json:"center" yaml:"center"`
	Extent      float64              `json:"extent" yaml:"extent"`
	Camera      viewer.CameraPose    `json:"camera" yaml:"camera"`
	Grid        viewer.GridScale     `json:"grid" yaml:"grid"`
}

// MetricsError reports a geometry whose metrics cannot be derived
type MetricsError struct {
	Err error
}

func (e *MetricsError) Error() string {
	return fmt.Sprintf("metrics: %v", e.Err)
}

func (e *MetricsError) Unwrap() error {
	return e.Err
}

// ComputeMetrics derives the bounding box, center, extent, camera pose and
// grid scale of a geometry.
func ComputeMetrics(g *mesh.Geometry) (Metrics, error) {
	if g == nil || g.VertexCount() == 0 {
		return Metrics{}, &MetricsError{Err: &mesh.EmptyGeometryError{}}
	}

	bbox := g.BoundingBox()
	extent := bbox.Extent()

	grid, err := viewer.NewGridScale(extent)
	if err != nil {
		return Metrics{}, &MetricsError{Err: err}
	}

	return Metrics{
		BoundingBox: bbox,
		Center:      bbox.Center(),
		Extent:      extent,
		Camera:      viewer.AutoFrame(bbox),
		Grid:        grid,
	}, nil
}
