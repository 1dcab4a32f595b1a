package shaders

import (
	"strings"
	"testing"
)

func TestSourcesEmbedded(t *testing.T) {
	sources := map[string]string{
		"lit.vert":      LitVertexShader,
		"unlit.vert":    UnlitVertexShader,
		"textured.frag": FragmentShader,
	}

	for name, src := range sources {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s: missing #version 410 core header", name)
		}
		if !strings.Contains(src, "void main()") {
			t.Errorf("%s: no main function", name)
		}
	}
}

func TestVaryingsMatch(t *testing.T) {
	for _, v := range []string{"out vec2 UV;", "out vec4 lighting;"} {
		if !strings.Contains(LitVertexShader, v) || !strings.Contains(UnlitVertexShader, v) {
			t.Errorf("vertex shaders disagree on %q", v)
		}
		in := strings.Replace(v, "out ", "in ", 1)
		if !strings.Contains(FragmentShader, in) {
			t.Errorf("fragment shader missing %q", in)
		}
	}
}
