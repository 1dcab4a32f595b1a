package model

// Kind names a primitive shape.
type Kind string

// Primitive kinds.
const (
	KindSquare  Kind = "square"
	KindCube    Kind = "cube"
	KindPyramid Kind = "pyramid"
)

// Build returns the geometry for a primitive kind, or nil for an unknown kind.
func Build(kind Kind, size float32) *Geometry {
	switch kind {
	case KindSquare:
		return Square(size)
	case KindCube:
		return Cube(size)
	case KindPyramid:
		return Pyramid(size)
	}
	return nil
}

// Square returns a size×size quad in the XY plane facing +Z, centred on the origin.
func Square(size float32) *Geometry {
	a := size / 2

	positions := []float32{
		a, a, 0,
		-a, a, 0,
		-a, -a, 0,
		a, a, 0,
		-a, -a, 0,
		a, -a, 0,
	}
	normals := repeat([3]float32{0, 0, 1}, 6)
	texCoords := []float32{
		1, 0,
		0, 0,
		0, 1,
		1, 0,
		0, 1,
		1, 1,
	}

	return &Geometry{Positions: positions, Normals: normals, TexCoords: texCoords}
}

// Pyramid returns a square-based pyramid whose base sits at y=0 and apex at y=size.
func Pyramid(size float32) *Geometry {
	a := size / 2

	positions := []float32{
		// base
		a, 0, a,
		-a, 0, a,
		-a, 0, -a,
		a, 0, a,
		-a, 0, -a,
		a, 0, -a,
		// front
		0, size, 0,
		-a, 0, a,
		a, 0, a,
		// right
		0, size, 0,
		a, 0, a,
		a, 0, -a,
		// back
		0, size, 0,
		a, 0, -a,
		-a, 0, -a,
		// left
		0, size, 0,
		-a, 0, -a,
		-a, 0, a,
	}

	const d = 0.707107
	var normals []float32
	normals = append(normals, repeat([3]float32{0, -1, 0}, 6)...)
	normals = append(normals, repeat([3]float32{0, d, d}, 3)...)
	normals = append(normals, repeat([3]float32{d, d, 0}, 3)...)
	normals = append(normals, repeat([3]float32{0, d, -d}, 3)...)
	normals = append(normals, repeat([3]float32{-d, d, 0}, 3)...)

	texCoords := []float32{
		1, 0, 0, 0, 0, 1,
		1, 0, 0, 1, 1, 1,

		0.5, 0, 0, 1, 1, 1,
		0.5, 0, 0, 1, 1, 1,
		0.5, 0, 0, 1, 1, 1,
		0.5, 0, 0, 1, 1, 1,
	}

	return &Geometry{Positions: positions, Normals: normals, TexCoords: texCoords}
}

// Cube returns an axis-aligned cube of edge size centred on the origin.
func Cube(size float32) *Geometry {
	a := size / 2
	b := -a

	positions := []float32{
		// right
		a, a, b,
		a, a, a,
		a, b, b,
		a, a, a,
		a, b, a,
		a, b, b,
		// left
		b, a, b,
		b, a, a,
		b, b, b,
		b, a, a,
		b, b, a,
		b, b, b,
		// top
		a, a, b,
		b, a, b,
		b, a, a,
		a, a, b,
		b, a, a,
		a, a, a,
		// bottom
		a, b, b,
		b, b, b,
		b, b, a,
		a, b, b,
		b, b, a,
		a, b, a,
		// front
		a, a, a,
		b, a, a,
		b, b, a,
		a, a, a,
		b, b, a,
		a, b, a,
		// back
		a, a, b,
		b, a, b,
		b, b, b,
		a, a, b,
		b, b, b,
		a, b, b,
	}

	var normals []float32
	for _, n := range [][3]float32{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	} {
		normals = append(normals, repeat(n, 6)...)
	}

	// Side faces share one UV layout, caps share another.
	sides := []float32{1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1}
	caps := []float32{1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1}
	var texCoords []float32
	texCoords = append(texCoords, sides...)
	texCoords = append(texCoords, sides...)
	for range 4 {
		texCoords = append(texCoords, caps...)
	}

	return &Geometry{Positions: positions, Normals: normals, TexCoords: texCoords}
}

func repeat(v [3]float32, n int) []float32 {
	out := make([]float32, 0, n*3)
	for range n {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}
