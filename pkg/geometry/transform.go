package geometry

import (
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// Transform is an affine local-to-world matrix.
// The zero value behaves as the identity.
type Transform struct {
	m mat4.T
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{m: mat4.Ident}
}

// Translation returns a transform that moves points by offset
func Translation(offset Vector3) Transform {
	m := mat4.Ident
	v := toVec3(offset)
	m.SetTranslation(&v)
	return Transform{m: m}
}

// Scaling returns a transform that scales each axis independently
func Scaling(factor Vector3) Transform {
	m := mat4.Ident
	m[0][0] = factor.X
	m[1][1] = factor.Y
	m[2][2] = factor.Z
	return Transform{m: m}
}

// FromMatrix wraps a go3d matrix (column-major, m[column][row])
func FromMatrix(m mat4.T) Transform {
	return Transform{m: m}
}

// FromColumnMajor builds a transform from 16 column-major elements,
// the layout used by WebGL style Matrix4.elements arrays
func FromColumnMajor(e [16]float64) Transform {
	var m mat4.T
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			m[col][row] = e[col*4+row]
		}
	}
	return FromMatrix(m)
}

// Matrix returns the underlying go3d matrix
func (t Transform) Matrix() mat4.T {
	if t.m == (mat4.T{}) {
		return mat4.Ident
	}
	return t.m
}

// IsIdentity reports whether the transform leaves points unchanged
func (t Transform) IsIdentity() bool {
	return t.Matrix() == mat4.Ident
}

// Then returns the transform that applies t first and next afterwards
func (t Transform) Then(next Transform) Transform {
	a := next.Matrix()
	b := t.Matrix()
	var r mat4.T
	r.AssignMul(&a, &b)
	return Transform{m: r}
}

// ApplyPoint transforms a position (w = 1), including translation
func (t Transform) ApplyPoint(p Vector3) Vector3 {
	m := t.Matrix()
	v := toVec3(p)
	return fromVec3(m.MulVec3(&v))
}

// ApplyDirection transforms a direction by the linear 3x3 part only and
// returns it at unit length. The zero vector stays zero.
func (t Transform) ApplyDirection(d Vector3) Vector3 {
	m := t.Matrix()
	v := toVec3(d)
	return fromVec3(m.MulVec3W(&v, 0)).Normalize()
}

func toVec3(v Vector3) vec3.T {
	return vec3.T{v.X, v.Y, v.Z}
}

func fromVec3(v vec3.T) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}
