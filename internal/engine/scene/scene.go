// Package scene draws the walkthrough: the lit terrain and props, then the
// unlit skybox, each as plain textured triangle lists.
package scene

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/heightwalk/internal/engine/lighting"
	"github.com/Faultbox/heightwalk/internal/engine/model"
	"github.com/Faultbox/heightwalk/internal/engine/scene/shaders"
	"github.com/Faultbox/heightwalk/internal/engine/shader"
	"github.com/Faultbox/heightwalk/internal/engine/terrain"
	"github.com/Faultbox/heightwalk/internal/logger"
	"github.com/Faultbox/heightwalk/pkg/math"
)

// Scene owns the two programs and everything drawn with them.
type Scene struct {
	lit   *shader.Program
	unlit *shader.Program

	Light   lighting.Light
	Terrain *terrain.Terrain
	Props   []*Mesh
	Skybox  []*Mesh
}

// New compiles the lit and unlit programs.
func New(light lighting.Light) (*Scene, error) {
	lit, err := shader.New("lit", shaders.LitVertexShader, shaders.FragmentShader)
	if err != nil {
		return nil, err
	}
	unlit, err := shader.New("unlit", shaders.UnlitVertexShader, shaders.FragmentShader)
	if err != nil {
		lit.Delete()
		return nil, err
	}

	s := &Scene{lit: lit, unlit: unlit, Light: light}
	logger.Debug("programs compiled", zap.Stringer("lit", lit), zap.Stringer("unlit", unlit))

	for _, p := range []*shader.Program{lit, unlit} {
		p.Use()
		p.SetInt("meshTexture", 0)
	}
	return s, nil
}

// TerrainUploader returns an uploader bound to the lit program.
func (s *Scene) TerrainUploader() Uploader {
	return Uploader{Attribs: AttribsOf(s.lit)}
}

// AddProp uploads a lit mesh. A nil image leaves it untextured.
func (s *Scene) AddProp(geom *model.Geometry, img image.Image) *Mesh {
	m := NewMesh(geom, AttribsOf(s.lit))
	if img != nil {
		m.SetTexture(img)
	}
	s.Props = append(s.Props, m)
	return m
}

// AddSkyboxFace uploads an unlit mesh. A nil image leaves it untextured.
func (s *Scene) AddSkyboxFace(geom *model.Geometry, img image.Image) *Mesh {
	m := NewMesh(geom, AttribsOf(s.unlit))
	if img != nil {
		m.SetTexture(img)
	}
	s.Skybox = append(s.Skybox, m)
	return m
}

// SetProjection uploads the projection to both programs. The matrix comes
// from math.Perspective and is already column-major.
func (s *Scene) SetProjection(p math.Mat4) {
	for _, prog := range []*shader.Program{s.lit, s.unlit} {
		prog.Use()
		prog.SetMat4("projection", p, false)
	}
}

// Draw renders one frame's geometry with the given row-major view matrix.
func (s *Scene) Draw(view math.Mat4) {
	s.lit.Use()
	s.lit.SetMat4("viewMatrix", view, true)
	s.lit.SetVec4("lightPosition", s.Light.Position)
	s.lit.SetVec4("lightColour", s.Light.Color)
	s.lit.SetFloat("lightIntensity", s.Light.Intensity)

	if m := s.terrainMesh(); m != nil {
		m.Draw(s.lit)
	}
	for _, m := range s.Props {
		m.Draw(s.lit)
	}

	s.unlit.Use()
	s.unlit.SetMat4("viewMatrix", view, true)
	for _, m := range s.Skybox {
		m.Draw(s.unlit)
	}
}

// terrainMesh syncs the terrain's placement onto its GPU mesh.
func (s *Scene) terrainMesh() *Mesh {
	if s.Terrain == nil || s.Terrain.Mesh == nil {
		return nil
	}
	m, ok := s.Terrain.Mesh.Resource.(*Mesh)
	if !ok {
		return nil
	}
	m.X, m.Y, m.Z = s.Terrain.Mesh.X, 0, s.Terrain.Mesh.Z
	m.Scale = s.Terrain.Scale
	return m
}

// Destroy releases every mesh, the terrain and both programs.
func (s *Scene) Destroy() {
	for _, m := range s.Props {
		m.Release()
	}
	for _, m := range s.Skybox {
		m.Release()
	}
	s.Props, s.Skybox = nil, nil

	if s.Terrain != nil {
		s.Terrain.Destroy()
		s.Terrain = nil
	}

	s.lit.Delete()
	s.unlit.Delete()
	logger.Debug("scene destroyed")
}

// Stats summarises what the scene draws.
func (s *Scene) Stats() []zap.Field {
	var vertices int32
	for _, m := range s.Props {
		vertices += m.NumVertices
	}
	for _, m := range s.Skybox {
		vertices += m.NumVertices
	}
	if m := s.terrainMesh(); m != nil {
		vertices += m.NumVertices
	}
	return []zap.Field{
		zap.Int("props", len(s.Props)),
		zap.Int("skybox_faces", len(s.Skybox)),
		zap.Int32("vertices", vertices),
	}
}

// String describes the scene for debugging.
func (s *Scene) String() string {
	return fmt.Sprintf("scene{props=%d skybox=%d terrain=%t}", len(s.Props), len(s.Skybox), s.Terrain != nil)
}
