package scene

import (
	"fmt"
	"image"

	"github.com/Faultbox/heightwalk/internal/engine/model"
	"github.com/Faultbox/heightwalk/internal/engine/terrain"
)

// Uploader creates GPU meshes bound to a fixed set of attribute locations.
// It satisfies terrain.Uploader.
type Uploader struct {
	Attribs Attribs
}

// UploadMesh uploads geometry and returns the resulting *Mesh.
func (u Uploader) UploadMesh(geom *model.Geometry) (terrain.Resource, error) {
	if u.Attribs.Position < 0 {
		return nil, fmt.Errorf("program has no position attribute")
	}
	return NewMesh(geom, u.Attribs), nil
}

// UploadTexture attaches img to a mesh returned by UploadMesh.
func (u Uploader) UploadTexture(res terrain.Resource, img image.Image) error {
	m, ok := res.(*Mesh)
	if !ok {
		return fmt.Errorf("resource %T is not a scene mesh", res)
	}
	m.SetTexture(img)
	return nil
}
