package model

import "testing"

func TestPrimitiveVertexCounts(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindSquare, 6},
		{KindPyramid, 18},
		{KindCube, 36},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			g := Build(tc.kind, 1)
			if g == nil {
				t.Fatalf("Build(%q) returned nil", tc.kind)
			}
			if got := g.VertexCount(); got != tc.want {
				t.Errorf("VertexCount() = %d, want %d", got, tc.want)
			}
			if len(g.Normals) != len(g.Positions) {
				t.Errorf("normals: %d floats, positions: %d floats", len(g.Normals), len(g.Positions))
			}
			if len(g.TexCoords) != tc.want*2 {
				t.Errorf("texcoords: %d floats, want %d", len(g.TexCoords), tc.want*2)
			}
		})
	}
}

func TestBuildUnknownKind(t *testing.T) {
	if g := Build("sphere", 1); g != nil {
		t.Errorf("Build(sphere) = %v, want nil", g)
	}
}

func TestCubeBounds(t *testing.T) {
	b := Cube(2).Bounds()
	for i := range 3 {
		if b.Min[i] != -1 || b.Max[i] != 1 {
			t.Errorf("axis %d: bounds [%v, %v], want [-1, 1]", i, b.Min[i], b.Max[i])
		}
	}
}

func TestPyramidRestsOnOrigin(t *testing.T) {
	b := Pyramid(3).Bounds()
	if b.Min[1] != 0 || b.Max[1] != 3 {
		t.Errorf("pyramid height range [%v, %v], want [0, 3]", b.Min[1], b.Max[1])
	}
}

func TestSquareFacesPositiveZ(t *testing.T) {
	g := Square(4)
	for i := range g.VertexCount() {
		if n := g.Normal(i); n != [3]float32{0, 0, 1} {
			t.Errorf("vertex %d normal = %v", i, n)
		}
		if p := g.Position(i); p[2] != 0 {
			t.Errorf("vertex %d off the XY plane: %v", i, p)
		}
	}
}

func TestAddVertex(t *testing.T) {
	g := NewGeometry(1)
	g.AddVertex([3]float32{1, 2, 3}, [3]float32{0, 1, 0}, [2]float32{0.5, 1})

	if g.VertexCount() != 1 {
		t.Fatalf("VertexCount() = %d, want 1", g.VertexCount())
	}
	if g.Position(0) != [3]float32{1, 2, 3} || g.Normal(0) != [3]float32{0, 1, 0} || g.TexCoord(0) != [2]float32{0.5, 1} {
		t.Errorf("vertex round trip mismatch: %v %v %v", g.Position(0), g.Normal(0), g.TexCoord(0))
	}
}
