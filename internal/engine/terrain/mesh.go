package terrain

import (
	"github.com/Faultbox/heightwalk/internal/engine/model"
	"github.com/Faultbox/heightwalk/pkg/math"
)

// TriangleCount returns the number of triangles BuildMesh emits for a
// size×size grid: 2 for the first cell, plus 2((i-1)+(i-2)) for every
// further row/column pair i up to size.
func TriangleCount(size int) int {
	if size < 2 {
		return 0
	}
	n := 2
	for i := 3; i <= size; i++ {
		n += 2 * ((i - 1) + (i - 2))
	}
	return n
}

// BuildMesh triangulates the heightmap. Every grid point (x, y) with a cell
// below it emits up to two triangles:
//
//	(x+1,y) (x,y) (x,y+1)      when x < size-1
//	(x,y) (x-1,y+1) (x,y+1)    when x > 0
//
// Each triangle gets one flat, unnormalised face normal. The split differs
// from the diagonal HeightAt interpolates over.
func BuildMesh(hm *Heightmap) *model.Geometry {
	size := hm.Size
	geom := model.NewGeometry(TriangleCount(size) * 3)

	point := func(x, y int) math.Vec3 {
		return math.Vec3{X: float32(x), Y: hm.Heights[x+y*size], Z: float32(y)}
	}

	for y := range size {
		for x := range size {
			if y >= size-1 {
				continue
			}
			if x < size-1 {
				emitTriangle(geom,
					point(x+1, y), point(x, y), point(x, y+1),
					[2]float32{1, 0}, [2]float32{0, 0}, [2]float32{0, 1})
			}
			if x > 0 {
				emitTriangle(geom,
					point(x, y), point(x-1, y+1), point(x, y+1),
					[2]float32{1, 0}, [2]float32{0, 1}, [2]float32{1, 1})
			}
		}
	}

	return geom
}

// emitTriangle appends a, b, c with the normal (b-a) × (c-a).
func emitTriangle(geom *model.Geometry, a, b, c math.Vec3, uvA, uvB, uvC [2]float32) {
	n := b.Sub(a).Cross(c.Sub(a)).Array()
	geom.AddVertex(a.Array(), n, uvA)
	geom.AddVertex(b.Array(), n, uvB)
	geom.AddVertex(c.Array(), n, uvC)
}
