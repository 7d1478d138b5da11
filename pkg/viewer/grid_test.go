package viewer

import (
	"errors"
	"math"
	"testing"
)

func TestNewGridScale(t *testing.T) {
	tests := []struct {
		extent float64
		unit   float64
	}{
		{2, 1},
		{1, 1},
		{9.99, 1},
		{10, 10},
		{250, 100},
		{1000, 1000},
		{0.05, 0.01},
		{0.001, 0.001},
	}

	for _, tt := range tests {
		grid, err := NewGridScale(tt.extent)
		if err != nil {
			t.Fatalf("NewGridScale(%v) failed: %v", tt.extent, err)
		}
		if math.Abs(grid.Unit-tt.unit) > 1e-10*tt.unit {
			t.Errorf("NewGridScale(%v) unit failed: expected %v, got %v", tt.extent, tt.unit, grid.Unit)
		}
		if math.Abs(grid.Size-tt.unit*1000) > 1e-10*tt.unit*1000 {
			t.Errorf("NewGridScale(%v) size failed: expected %v, got %v", tt.extent, tt.unit*1000, grid.Size)
		}
		if grid.Divisions != GridDivisions {
			t.Errorf("NewGridScale(%v) divisions failed: expected %d, got %d", tt.extent, GridDivisions, grid.Divisions)
		}
	}
}

func TestNewGridScaleDegenerate(t *testing.T) {
	for _, extent := range []float64{0, -1, math.NaN(), math.Inf(1), math.SmallestNonzeroFloat64, math.MaxFloat64} {
		_, err := NewGridScale(extent)

		var degenerate *DegenerateExtentError
		if !errors.As(err, &degenerate) {
			t.Errorf("NewGridScale(%v) failed: expected DegenerateExtentError, got %v", extent, err)
		}
	}
}
