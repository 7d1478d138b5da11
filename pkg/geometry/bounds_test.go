package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := BoundingBoxOf(nil)

	if !bbox.IsEmpty() {
		t.Errorf("IsEmpty failed: expected empty box, got %v", bbox)
	}
	if bbox.Center() != (Vector3{}) {
		t.Errorf("Center failed: expected zero vector for empty box, got %v", bbox.Center())
	}
	if bbox.Extent() != 0 {
		t.Errorf("Extent failed: expected 0 for empty box, got %v", bbox.Extent())
	}

	bbox.Extend(NewVector3(1, 1, 1))
	if bbox.IsEmpty() {
		t.Errorf("IsEmpty failed: single point box should not be empty")
	}
}

func TestBoundingBoxUnitCube(t *testing.T) {
	bbox := BoundingBoxOf([]Vector3{
		NewVector3(-1, -1, -1),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 1),
		NewVector3(1, 1, 1),
	})

	if bbox.Min != NewVector3(-1, -1, -1) {
		t.Errorf("Min failed: expected (-1,-1,-1), got %v", bbox.Min)
	}
	if bbox.Max != NewVector3(1, 1, 1) {
		t.Errorf("Max failed: expected (1,1,1), got %v", bbox.Max)
	}
	if bbox.Center() != (Vector3{}) {
		t.Errorf("Center failed: expected origin, got %v", bbox.Center())
	}
	if bbox.Extent() != 2 {
		t.Errorf("Extent failed: expected 2, got %v", bbox.Extent())
	}
}

func TestBoundingBoxSize(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	size := bbox.Size()
	expected := NewVector3(10, 20, 30)

	if size != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, size)
	}
	if bbox.Extent() != 30 {
		t.Errorf("Extent failed: expected 30, got %v", bbox.Extent())
	}
}

func TestBoundingBoxVolume(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 3, 4))

	volume := bbox.Volume()
	expected := 24.0 // 2 * 3 * 4 = 24

	if math.Abs(volume-expected) > 1e-10 {
		t.Errorf("Volume failed: expected %v, got %v", expected, volume)
	}
}
