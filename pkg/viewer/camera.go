// Package viewer derives the initial scene state for a loaded geometry:
// the camera pose and the scale of the ground grid.
package viewer

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
)

// CameraPose is the initial camera placement
type CameraPose struct {
	Position geometry.Vector3 `json:"position" yaml:"position"`
	Target   geometry.Vector3 `json:"target" yaml:"target"`
}

// AutoFrame places the camera diagonally off the bounding box center at twice
// the largest half-span, looking at the center.
//
// Each axis sign is +1 when the half-span is positive and -1 otherwise, so a
// flat axis puts the camera on its negative side. Since the offset is scaled
// by the largest half-span, the camera still clears a flat model.
func AutoFrame(bbox geometry.BoundingBox) CameraPose {
	half := bbox.Size().Mul(0.5)
	d := half.MaxComponent() * 2.0

	offset := geometry.NewVector3(d*sign(half.X), d*sign(half.Y), d*sign(half.Z))
	center := bbox.Center()

	return CameraPose{
		Position: center.Add(offset),
		Target:   center,
	}
}

// Distance returns the distance between the camera and its target
func (p CameraPose) Distance() float64 {
	return p.Position.Distance(p.Target)
}

func sign(halfSpan float64) float64 {
	if halfSpan > 0 {
		return 1.0
	}
	return -1.0
}

// ViewDirection returns the unit vector from the camera toward its target
func (p CameraPose) ViewDirection() geometry.Vector3 {
	return p.Target.Sub(p.Position).Normalize()
}
