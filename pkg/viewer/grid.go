package viewer

import (
	"fmt"
	"math"
)

// GridDivisions is the fixed number of grid cells along one side
const GridDivisions = 1000

// GridScale sizes the ground grid to the model: one cell is the power of ten
// at or below the model extent.
type GridScale struct {
	Unit      float64 `json:"unit" yaml:"unit"`
	Size      float64 `json:"size" yaml:"size"`
	Divisions int     `json:"divisions" yaml:"divisions"`
}

// DegenerateExtentError reports an extent that cannot be scaled to a grid
type DegenerateExtentError struct {
	Extent float64
}

func (e *DegenerateExtentError) Error() string {
	return fmt.Sprintf("degenerate extent %v: grid needs a positive finite extent", e.Extent)
}

// NewGridScale computes the grid for a model of the given extent
func NewGridScale(extent float64) (GridScale, error) {
	if extent <= 0 || math.IsNaN(extent) || math.IsInf(extent, 0) {
		return GridScale{}, &DegenerateExtentError{Extent: extent}
	}

	exp := int(math.Floor(math.Log10(extent)))
	// Log10 is not exact at powers of ten
	if math.Pow10(exp+1) <= extent {
		exp++
	} else if math.Pow10(exp) > extent {
		exp--
	}

	unit := math.Pow10(exp)
	// Subnormal extents underflow the unit, the largest ones overflow the size
	if unit == 0 || math.IsInf(unit*GridDivisions, 0) {
		return GridScale{}, &DegenerateExtentError{Extent: extent}
	}
	return GridScale{
		Unit:      unit,
		Size:      unit * GridDivisions,
		Divisions: GridDivisions,
	}, nil
}
