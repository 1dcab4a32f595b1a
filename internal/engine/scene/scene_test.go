package scene

import (
	"testing"

	"github.com/Faultbox/heightwalk/pkg/math"
)

func close3(v math.Vec4, x, y, z float32) bool {
	for i, w := range []float32{x, y, z} {
		d := v[i] - w
		if d > 1e-3 || d < -1e-3 {
			return false
		}
	}
	return true
}

func TestModelMatrixOrder(t *testing.T) {
	// Rotate about X, then Y, then scale, then translate.
	m := ModelMatrix(10, 0, 0, 90, 90, 2)
	p := m.MulVec4(math.Point(0, 1, 0))

	// X(90): (0,1,0) -> (0,0,-1); Y(90): -> (1,0,0); scale 2 -> (2,0,0);
	// translate -> (12,0,0).
	if !close3(p, 12, 0, 0) {
		t.Errorf("transformed point = %v, want (12, 0, 0)", p)
	}
}

func TestModelMatrixKeepsHeights(t *testing.T) {
	p := ModelMatrix(0, 0, 0, 0, 0, 4).MulVec4(math.Point(1, 3, 1))
	if !close3(p, 4, 3, 4) {
		t.Errorf("scaled point = %v, want (4, 3, 4)", p)
	}
}

func TestModelMatrixIdentity(t *testing.T) {
	if got := ModelMatrix(0, 0, 0, 0, 0, 1); got != math.Identity() {
		t.Errorf("zero placement = %v, want identity", got)
	}
}

func TestMeshModelMatrix(t *testing.T) {
	m := &Mesh{X: 1, Y: 2, Z: 3, Scale: 1}
	p := m.ModelMatrix().MulVec4(math.Point(0, 0, 0))
	if !close3(p, 1, 2, 3) {
		t.Errorf("origin maps to %v, want (1, 2, 3)", p)
	}
}

func TestSkyboxLayoutFacesInward(t *testing.T) {
	layout := SkyboxLayout(1000)
	if len(layout) != 6 {
		t.Fatalf("got %d faces, want 6", len(layout))
	}

	for _, f := range layout {
		// A square faces +Z before placement. After rotation its normal
		// must point back at the centre.
		rot := math.RotationY(f.RY).Mul(math.RotationX(f.RX))
		n := rot.MulVec4(math.Vec4{0, 0, 1, 0})
		centre := math.Vec3{X: -f.X, Y: -f.Y, Z: -f.Z}.Normalize()

		dot := n[0]*centre.X + n[1]*centre.Y + n[2]*centre.Z
		if dot < 0.99 {
			t.Errorf("face %d normal %v does not face the centre (dot %v)", f.Face, n, dot)
		}

		dist := math.Vec3{X: f.X, Y: f.Y, Z: f.Z}.Magnitude()
		if dist != 500 {
			t.Errorf("face %d at distance %v, want 500", f.Face, dist)
		}
	}
}

func TestMeshShift(t *testing.T) {
	m := &Mesh{X: 1, Y: 2, Z: 3}
	m.Shift(0.5, 0, -1)
	if m.X != 1.5 || m.Y != 2 || m.Z != 2 {
		t.Errorf("after Shift = (%v, %v, %v)", m.X, m.Y, m.Z)
	}
}

func TestSceneString(t *testing.T) {
	s := &Scene{Props: []*Mesh{{}, {}}, Skybox: make([]*Mesh, 6)}
	want := "scene{props=2 skybox=6 terrain=false}"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
