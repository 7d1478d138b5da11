package geometry

import (
	"math"
	"testing"

	"github.com/ungerik/go3d/float64/mat4"
)

func vectorsClose(a, b Vector3) bool {
	return a.Distance(b) < 1e-10
}

func TestTransformZeroValueIsIdentity(t *testing.T) {
	var tr Transform
	p := NewVector3(1, 2, 3)

	if !tr.IsIdentity() {
		t.Errorf("IsIdentity failed: zero value should be identity")
	}
	if got := tr.ApplyPoint(p); got != p {
		t.Errorf("ApplyPoint failed: expected %v, got %v", p, got)
	}
}

func TestTransformTranslation(t *testing.T) {
	tr := Translation(NewVector3(10, -5, 2))

	got := tr.ApplyPoint(NewVector3(1, 1, 1))
	expected := NewVector3(11, -4, 3)
	if !vectorsClose(got, expected) {
		t.Errorf("ApplyPoint failed: expected %v, got %v", expected, got)
	}

	// Directions ignore translation
	dir := tr.ApplyDirection(NewVector3(0, 0, 1))
	if !vectorsClose(dir, NewVector3(0, 0, 1)) {
		t.Errorf("ApplyDirection failed: expected (0,0,1), got %v", dir)
	}
}

func TestTransformScalingKeepsUnitNormals(t *testing.T) {
	tr := Scaling(NewVector3(2, 3, 4))

	got := tr.ApplyPoint(NewVector3(1, 1, 1))
	if !vectorsClose(got, NewVector3(2, 3, 4)) {
		t.Errorf("ApplyPoint failed: expected (2,3,4), got %v", got)
	}

	dir := tr.ApplyDirection(NewVector3(1, 0, 0))
	if math.Abs(dir.Length()-1) > 1e-10 {
		t.Errorf("ApplyDirection failed: expected unit length, got %v", dir.Length())
	}
}

func TestTransformFromColumnMajor(t *testing.T) {
	// 90 degree rotation about Z followed by a translation of (1, 0, 0)
	tr := FromColumnMajor([16]float64{
		0, 1, 0, 0,
		-1, 0, 0, 0,
		0, 0, 1, 0,
		1, 0, 0, 1,
	})

	got := tr.ApplyPoint(NewVector3(1, 0, 0))
	if !vectorsClose(got, NewVector3(1, 1, 0)) {
		t.Errorf("ApplyPoint failed: expected (1,1,0), got %v", got)
	}

	dir := tr.ApplyDirection(NewVector3(1, 0, 0))
	if !vectorsClose(dir, NewVector3(0, 1, 0)) {
		t.Errorf("ApplyDirection failed: expected (0,1,0), got %v", dir)
	}
}

func TestTransformThen(t *testing.T) {
	tr := Scaling(NewVector3(2, 2, 2)).Then(Translation(NewVector3(1, 0, 0)))

	got := tr.ApplyPoint(NewVector3(1, 1, 1))
	expected := NewVector3(3, 2, 2)
	if !vectorsClose(got, expected) {
		t.Errorf("Then failed: expected %v, got %v", expected, got)
	}
}

func TestTransformThenOrder(t *testing.T) {
	// Translating first and scaling afterwards also scales the offset
	tr := Translation(NewVector3(1, 0, 0)).Then(Scaling(NewVector3(2, 3, 4)))

	got := tr.ApplyPoint(NewVector3(1, 1, 1))
	expected := NewVector3(4, 3, 4)
	if !vectorsClose(got, expected) {
		t.Errorf("Then failed: expected %v, got %v", expected, got)
	}

	dir := tr.ApplyDirection(NewVector3(0, 1, 0))
	if !vectorsClose(dir, NewVector3(0, 1, 0)) {
		t.Errorf("ApplyDirection failed: expected (0,1,0), got %v", dir)
	}
}

func TestTransformFromMatrix(t *testing.T) {
	m := mat4.Ident
	m[0][0] = 3
	offset := toVec3(NewVector3(0, 0, -2))
	m.SetTranslation(&offset)

	tr := FromMatrix(m)
	if tr.Matrix() != m {
		t.Errorf("Matrix failed: expected %v, got %v", m, tr.Matrix())
	}

	got := tr.ApplyPoint(NewVector3(1, 1, 1))
	if !vectorsClose(got, NewVector3(3, 1, -1)) {
		t.Errorf("ApplyPoint failed: expected (3,1,-1), got %v", got)
	}

	// Non-uniform scale skews a diagonal direction before renormalization
	dir := tr.ApplyDirection(NewVector3(1, 1, 0))
	expected := NewVector3(3, 1, 0).Normalize()
	if !vectorsClose(dir, expected) {
		t.Errorf("ApplyDirection failed: expected %v, got %v", expected, dir)
	}
	if zero := tr.ApplyDirection(Vector3{}); zero != (Vector3{}) {
		t.Errorf("ApplyDirection failed: zero should stay zero, got %v", zero)
	}
}
