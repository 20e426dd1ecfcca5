package mathx

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("expected unit length, got %f", v.Length())
	}

	zero := Vec3{}.Normalize()
	if !zero.IsZero() {
		t.Errorf("expected zero vector from normalizing zero, got %+v", zero)
	}
}

func TestCrossRightHanded(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := x.Cross(y)
	if z != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y = %+v, expected +z", z)
	}
}

func TestRotateY(t *testing.T) {
	// quarter turn takes +X onto -Z
	v := Vec3{1, 0, 0}.RotateY(math.Pi / 2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Z+1) > 1e-12 {
		t.Errorf("expected (0,0,-1), got %+v", v)
	}
}

func TestDotPerpendicular(t *testing.T) {
	if d := (Vec3{1, 0, 0}).Dot(Vec3{0, 5, 0}); d != 0 {
		t.Errorf("expected 0 dot product, got %f", d)
	}
}
