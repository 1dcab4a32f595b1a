package terrain

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/heightwalk/internal/logger"
	"github.com/Faultbox/heightwalk/pkg/math"
)

// Generate loads the heightmap at opts.HeightmapPath, builds the mesh and
// uploads it. A missing heightmap or a failed mesh upload is fatal. A missing
// or undecodable texture is only logged; the terrain is returned untextured.
func Generate(opts Options, images ImageLoader, gpu Uploader) (*Terrain, error) {
	if opts.Size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, opts.Size)
	}
	if !(opts.Scale > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidScale, opts.Scale)
	}

	img, err := images.LoadImage(opts.HeightmapPath)
	if err != nil {
		return nil, fmt.Errorf("load heightmap %q: %w", opts.HeightmapPath, err)
	}
	if b := img.Bounds(); b.Dx() != opts.Size || b.Dy() != opts.Size {
		logger.Warn("heightmap size differs from terrain size",
			zap.String("path", opts.HeightmapPath),
			zap.Int("width", b.Dx()),
			zap.Int("height", b.Dy()),
			zap.Int("size", opts.Size))
	}

	t := FromHeightmap(HeightmapFromImage(img, opts.Size), opts.Scale)

	res, err := gpu.UploadMesh(BuildMesh(t.Heightmap))
	if err != nil {
		return nil, fmt.Errorf("upload terrain mesh: %w", err)
	}
	t.Mesh.Resource = res

	if opts.TexturePath == "" {
		logger.Debug("terrain has no texture")
	} else if err := loadTexture(opts.TexturePath, images, gpu, res); err != nil {
		logger.Warn("terrain texture not applied",
			zap.String("path", opts.TexturePath),
			zap.Error(err))
	}

	logger.Info("terrain generated",
		zap.Int("size", t.Size),
		zap.Float32("scale", t.Scale),
		zap.Int("triangles", TriangleCount(t.Size)))

	return t, nil
}

func loadTexture(path string, images ImageLoader, gpu Uploader, res Resource) error {
	img, err := images.LoadImage(path)
	if err != nil {
		return err
	}
	return gpu.UploadTexture(res, img)
}

// FromHeightmap wraps an existing heightmap in a terrain placed at the origin.
// The mesh has no GPU resource; HeightAt works without one. scale must be
// positive; with any other scale HeightAt always returns 0.
func FromHeightmap(hm *Heightmap, scale float32) *Terrain {
	return &Terrain{
		Heightmap: hm,
		Mesh:      &Mesh{NumVertices: TriangleCount(hm.Size) * 3},
		Size:      hm.Size,
		Scale:     scale,
	}
}

// Center places the terrain so that the world origin lies at its middle.
func (t *Terrain) Center() {
	offset := -t.Scale * float32(t.Size) / 2
	t.Mesh.X = offset
	t.Mesh.Z = offset
}

// Extent returns the world-space XZ rectangle covered by the grid points.
func (t *Terrain) Extent() (minX, minZ, maxX, maxZ float32) {
	span := t.Scale * float32(max(t.Size-1, 0))
	return t.Mesh.X, t.Mesh.Z, t.Mesh.X + span, t.Mesh.Z + span
}

// HeightAt returns the interpolated ground height at world position (x, z).
//
// The cell containing the point is split along the diagonal from (1,0) to
// (0,1): points with fx <= 1-fz use the upper triangle, the rest the lower.
// Corners outside the grid contribute zero. After Destroy it returns 0.
func (t *Terrain) HeightAt(x, z float32) float32 {
	if t.Heightmap == nil || !(t.Scale > 0) {
		return 0
	}

	lx := (x - t.Mesh.X) / t.Scale
	lz := (z - t.Mesh.Z) / t.Scale

	// More than one cell past the grid reads as outside it. This also keeps
	// huge and NaN coordinates away from the int conversion.
	limit := float32(t.Heightmap.Size)
	if !(lx >= -1 && lx <= limit && lz >= -1 && lz <= limit) {
		return 0
	}

	gx := float32(gomath.Floor(float64(lx)))
	gz := float32(gomath.Floor(float64(lz)))
	fx := lx - gx
	fz := lz - gz
	ix, iz := int(gx), int(gz)

	h0 := t.Heightmap.At(ix, iz)
	h1 := t.Heightmap.At(ix+1, iz)
	h2 := t.Heightmap.At(ix, iz+1)

	if fx <= 1-fz {
		return math.Barycentric(
			math.Vec3{X: 1, Y: h1, Z: 0},
			math.Vec3{X: 0, Y: h0, Z: 0},
			math.Vec3{X: 0, Y: h2, Z: 1},
			fx, fz)
	}

	h3 := t.Heightmap.At(ix+1, iz+1)
	return math.Barycentric(
		math.Vec3{X: 1, Y: h1, Z: 0},
		math.Vec3{X: 0, Y: h2, Z: 1},
		math.Vec3{X: 1, Y: h3, Z: 1},
		fx, fz)
}

// Destroy releases the GPU mesh and drops the heightmap. Calling it twice is
// a no-op.
func (t *Terrain) Destroy() {
	if t.Mesh != nil && t.Mesh.Resource != nil {
		t.Mesh.Resource.Release()
		t.Mesh.Resource = nil
	}
	t.Heightmap = nil
}
