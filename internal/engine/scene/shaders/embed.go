// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader transforms vertices and computes per-vertex diffuse
// lighting from a single light.
//
//go:embed lit.vert
var LitVertexShader string

// UnlitVertexShader transforms vertices with full brightness. The skybox
// uses it.
//
//go:embed unlit.vert
var UnlitVertexShader string

// FragmentShader samples the mesh texture and applies the vertex lighting.
// Both programs share it.
//
//go:embed textured.frag
var FragmentShader string
