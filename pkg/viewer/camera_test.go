package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

func TestAutoFrameUnitCube(t *testing.T) {
	bbox := geometry.BoundingBox{
		Min: geometry.NewVector3(-1, -1, -1),
		Max: geometry.NewVector3(1, 1, 1),
	}

	pose := AutoFrame(bbox)

	expected := geometry.NewVector3(2, 2, 2)
	if pose.Position != expected {
		t.Errorf("AutoFrame position failed: expected %v, got %v", expected, pose.Position)
	}
	if pose.Target != (geometry.Vector3{}) {
		t.Errorf("AutoFrame target failed: expected origin, got %v", pose.Target)
	}
	if math.Abs(pose.Distance()-2*math.Sqrt(3)) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", 2*math.Sqrt(3), pose.Distance())
	}
}

func TestAutoFrameFlatAxis(t *testing.T) {
	bbox := geometry.BoundingBox{
		Min: geometry.NewVector3(0, 0, 0),
		Max: geometry.NewVector3(2, 0, 4),
	}

	pose := AutoFrame(bbox)

	expected := geometry.NewVector3(5, -4, 6)
	if pose.Position != expected {
		t.Errorf("AutoFrame position failed: expected %v, got %v", expected, pose.Position)
	}
	if pose.Target != geometry.NewVector3(1, 0, 2) {
		t.Errorf("AutoFrame target failed: expected (1, 0, 2), got %v", pose.Target)
	}
}

func TestViewDirection(t *testing.T) {
	pose := CameraPose{Position: geometry.NewVector3(0, 0, 5)}

	expected := geometry.NewVector3(0, 0, -1)
	if got := pose.ViewDirection(); got != expected {
		t.Errorf("ViewDirection failed: expected %v, got %v", expected, got)
	}
}
