package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 || m[3] != 0 || m[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestZeroRotationIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"x", RotationX(0)},
		{"y", RotationY(0)},
		{"z", RotationZ(0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.m != Identity() {
				t.Errorf("Rotation%s(0) = %v, want identity", tc.name, tc.m)
			}
		})
	}
}

func TestTranslation(t *testing.T) {
	m := Translation(5, 10, 15)

	// Row-major: offset lives at indices 3, 7, 11
	if m[3] != 5 || m[7] != 10 || m[11] != 15 {
		t.Errorf("Translation: got (%f, %f, %f), want (5, 10, 15)", m[3], m[7], m[11])
	}

	p := m.MulVec4(Point(1, 2, 3))
	if p != (Vec4{6, 12, 18, 1}) {
		t.Errorf("Translation applied to point: got %v", p)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translation(1, 2, 3).Mul(RotationY(30))
	id := Identity()

	if got := m.Mul(id); got != m {
		t.Errorf("M * I should equal M, got %v", got)
	}
	if got := id.Mul(m); got != m {
		t.Errorf("I * M should equal M, got %v", got)
	}
}

func TestMulAppliesRightOperandFirst(t *testing.T) {
	// Rotate (1,0,0) by 90 degrees about Y, then translate.
	m := Translation(10, 0, 0).Mul(RotationY(90))
	p := m.MulVec4(Point(1, 0, 0))

	// RotationY(90) maps +X onto +Z in this convention (m8 = sin)
	want := Vec4{10, 0, 1, 1}
	for i := range 4 {
		if abs(p[i]-want[i]) > 1e-5 {
			t.Fatalf("composed transform: got %v, want %v", p, want)
		}
	}
}

func TestMulInPlace(t *testing.T) {
	a := Translation(1, 0, 0)
	b := Translation(0, 2, 0)
	want := a.Mul(b)

	MulInPlace(&a, b)
	if a != want {
		t.Errorf("MulInPlace: got %v, want %v", a, want)
	}
}

func TestRotationXElements(t *testing.T) {
	m := RotationX(90)
	if abs(m[5]) > 1e-6 || abs(m[6]-1) > 1e-6 || abs(m[9]+1) > 1e-6 || abs(m[10]) > 1e-6 {
		t.Errorf("RotationX(90): got %v", m)
	}
}

func TestRotateVecY(t *testing.T) {
	// The walkthrough moves forward along -Z and rotates by the yaw.
	v := RotateVecY(180, Vec4{0, 0, -1, 1})
	if abs(v[0]) > 1e-5 || abs(v[2]-1) > 1e-5 || v[3] != 1 {
		t.Errorf("RotateVecY(180, forward) = %v, want (0, 0, 1, 1)", v)
	}
}

func TestRotateVecZ(t *testing.T) {
	v := RotateVecZ(90, Vec4{1, 0, 0, 0})
	if abs(v[0]) > 1e-5 || abs(v[1]+1) > 1e-5 {
		t.Errorf("RotateVecZ(90, x) = %v, want (0, -1, 0, 0)", v)
	}
}

func TestRotateVecX(t *testing.T) {
	v := RotateVecX(90, Vec4{0, 1, 0, 0})
	if abs(v[1]) > 1e-5 || abs(v[2]+1) > 1e-5 {
		t.Errorf("RotateVecX(90, y) = %v, want (0, 0, -1, 0)", v)
	}
}

func TestPerspective(t *testing.T) {
	near := float32(0.1)
	far := float32(1000.0)
	m := Perspective(near, far, 45, 1.0)

	a := float32(1 / math.Tan(math.Pi/8))
	if abs(m[0]-a) > 1e-5 || abs(m[5]-a) > 1e-5 {
		t.Errorf("Perspective scale: got (%f, %f), want %f", m[0], m[5], a)
	}
	if want := -(far + near) / (far - near); abs(m[10]-want) > 1e-6 {
		t.Errorf("Perspective [10] = %f, want %f", m[10], want)
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
	if want := -(2 * far * near) / (far - near); abs(m[14]-want) > 1e-6 {
		t.Errorf("Perspective [14] = %f, want %f", m[14], want)
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
}

func TestPerspectiveAspect(t *testing.T) {
	m := Perspective(0.1, 100, 90, 2)
	if abs(m[0]-0.5) > 1e-5 || abs(m[5]-1) > 1e-5 {
		t.Errorf("Perspective(fov=90, aspect=2): got m0=%f m5=%f", m[0], m[5])
	}
}

func TestInverseRoundTrip(t *testing.T) {
	transforms := []Mat4{
		Identity(),
		Translation(3, -4, 5),
		RotationX(33).Mul(RotationY(-71)),
		Translation(-12, 7.5, 0.25).Mul(RotationY(123)).Mul(RotationX(-40)).Mul(RotationZ(17)),
		Translation(1, 2, 3).Mul(Scale(2, 0.5, 4)).Mul(RotationZ(200)),
	}

	for i, m := range transforms {
		inv, ok := m.Inverse()
		if !ok {
			t.Fatalf("transform %d: expected invertible", i)
		}
		product := m.Mul(inv)
		id := Identity()
		for j := range 16 {
			if abs(product[j]-id[j]) > 1e-4 {
				t.Errorf("transform %d: M * inv(M) [%d] = %f, want %f", i, j, product[j], id[j])
			}
		}
	}
}

func TestInverseSingular(t *testing.T) {
	if _, ok := (Mat4{}).Inverse(); ok {
		t.Error("zero matrix should not be invertible")
	}

	// Two equal rows
	m := Mat4{
		1, 2, 3, 4,
		1, 2, 3, 4,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	if _, ok := m.Inverse(); ok {
		t.Error("matrix with repeated rows should not be invertible")
	}
}

func TestTranspose(t *testing.T) {
	m := Translation(1, 2, 3)
	tr := m.Transpose()
	if tr[12] != 1 || tr[13] != 2 || tr[14] != 3 {
		t.Errorf("Transpose moved offsets to %v", tr)
	}
	if tr.Transpose() != m {
		t.Error("double transpose should be the original matrix")
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); abs(got-math.Pi) > 1e-6 {
		t.Errorf("Radians(180) = %f, want pi", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
