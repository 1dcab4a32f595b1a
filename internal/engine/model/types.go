// Package model holds CPU-side mesh geometry and the primitive shapes the
// walkthrough scatters over the terrain.
package model

// Geometry is a non-indexed triangle list stored as three parallel buffers,
// the layout the GPU upload expects.
type Geometry struct {
	Positions []float32 // 3 floats per vertex
	Normals   []float32 // 3 floats per vertex
	TexCoords []float32 // 2 floats per vertex
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// NewGeometry returns empty geometry with room for the given vertex count.
func NewGeometry(vertices int) *Geometry {
	return &Geometry{
		Positions: make([]float32, 0, vertices*3),
		Normals:   make([]float32, 0, vertices*3),
		TexCoords: make([]float32, 0, vertices*2),
	}
}

// AddVertex appends one vertex to all three buffers.
func (g *Geometry) AddVertex(pos, normal [3]float32, uv [2]float32) {
	g.Positions = append(g.Positions, pos[0], pos[1], pos[2])
	g.Normals = append(g.Normals, normal[0], normal[1], normal[2])
	g.TexCoords = append(g.TexCoords, uv[0], uv[1])
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	return g.VertexCount() / 3
}

// Position returns the position of vertex i.
func (g *Geometry) Position(i int) [3]float32 {
	return [3]float32{g.Positions[i*3], g.Positions[i*3+1], g.Positions[i*3+2]}
}

// Normal returns the normal of vertex i.
func (g *Geometry) Normal(i int) [3]float32 {
	return [3]float32{g.Normals[i*3], g.Normals[i*3+1], g.Normals[i*3+2]}
}

// TexCoord returns the texture coordinate of vertex i.
func (g *Geometry) TexCoord(i int) [2]float32 {
	return [2]float32{g.TexCoords[i*2], g.TexCoords[i*2+1]}
}

// Bounds computes the bounding box of all positions.
func (g *Geometry) Bounds() Bounds {
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for i := range g.VertexCount() {
		updateBounds(&b, g.Position(i))
	}
	return b
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
