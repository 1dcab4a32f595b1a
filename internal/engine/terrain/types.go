// Package terrain turns a grayscale heightmap into a renderable triangle mesh
// and answers continuous ground-height queries over it.
package terrain

import (
	"errors"
	"image"

	"github.com/Faultbox/heightwalk/internal/engine/model"
)

// HeightDivisor compresses the 0-255 heightmap range into world heights.
const HeightDivisor = 15.0

// Errors returned by Generate for unusable options.
var (
	ErrInvalidSize  = errors.New("terrain size must be at least 1")
	ErrInvalidScale = errors.New("terrain scale must be positive")
)

// Heightmap is a Size×Size grid of heights, row-major, indexed x + z*Size.
type Heightmap struct {
	Size    int
	Heights []float32
}

// Mesh is the GPU side of a terrain. Positions inside it are in unscaled
// grid-local coordinates; placement and scale apply at draw and query time.
type Mesh struct {
	X, Z        float32 // world placement of grid point (0, 0)
	NumVertices int
	Resource    Resource
}

// Terrain owns a heightmap and the mesh generated from it.
type Terrain struct {
	Heightmap *Heightmap
	Mesh      *Mesh
	Size      int
	Scale     float32 // world units per grid cell
}

// Options configures Generate.
type Options struct {
	Size          int
	HeightmapPath string
	TexturePath   string
	Scale         float32
}

// ImageLoader decodes images by path.
type ImageLoader interface {
	LoadImage(path string) (image.Image, error)
}

// Resource is a GPU allocation owned by a terrain.
type Resource interface {
	Release()
}

// Uploader moves terrain data to GPU-resident storage.
type Uploader interface {
	// UploadMesh copies the geometry into GPU buffers. The geometry is not
	// retained after the call.
	UploadMesh(geom *model.Geometry) (Resource, error)
	// UploadTexture attaches a 2D texture to a previously uploaded mesh.
	UploadTexture(res Resource, img image.Image) error
}
