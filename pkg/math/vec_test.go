package math

import (
	"math"
	"testing"
)

func TestVec2Distance(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{4, 6}
	got := a.Distance(b)
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Distance() = %v, want %v", got, want)
	}
}

func TestVec2Dot(t *testing.T) {
	got := Vec2{1, 2}.Dot(Vec2{3, 4})
	if got != 11 {
		t.Errorf("Vec2.Dot() = %v, want 11", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Dot(t *testing.T) {
	got := Vec3{1, 2, 3}.Dot(Vec3{4, -5, 6})
	if got != 12 {
		t.Errorf("Vec3.Dot() = %v, want 12", got)
	}
}

func TestVec3Distance(t *testing.T) {
	got := Vec3{1, 1, 1}.Distance(Vec3{3, 4, 7})
	if got != 7 {
		t.Errorf("Vec3.Distance() = %v, want 7", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	if l := n.Magnitude(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Magnitude() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestBarycentric(t *testing.T) {
	a := Vec3{1, 10, 0}
	b := Vec3{0, 20, 0}
	c := Vec3{0, 30, 1}

	tests := []struct {
		name string
		x, z float32
		want float32
	}{
		{"vertex a", 1, 0, 10},
		{"vertex b", 0, 0, 20},
		{"vertex c", 0, 1, 30},
		{"edge ab midpoint", 0.5, 0, 15},
		{"centroid", 1.0 / 3, 1.0 / 3, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Barycentric(a, b, c, tc.x, tc.z)
			if abs(got-tc.want) > 1e-4 {
				t.Errorf("Barycentric(%v, %v) = %v, want %v", tc.x, tc.z, got, tc.want)
			}
		})
	}
}

func TestBarycentricDegenerate(t *testing.T) {
	// Collinear in XZ: the determinant is zero and the result is not a number.
	a := Vec3{0, 1, 0}
	b := Vec3{1, 2, 0}
	c := Vec3{2, 3, 0}
	got := Barycentric(a, b, c, 0.5, 0.5)
	if !math.IsNaN(float64(got)) && !math.IsInf(float64(got), 0) {
		t.Errorf("degenerate triangle should give NaN or Inf, got %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 0, 10, 5, 4); abs(got-2) > 1e-6 {
		t.Errorf("Lerp() = %v, want 2", got)
	}
}
