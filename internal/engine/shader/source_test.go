package shader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		vertex   string
		fragment string
	}{
		{
			name:     "vertex first",
			src:      "#shader vertex\nvoid v() {}\n#shader fragment\nvoid f() {}\n",
			vertex:   "void v() {}\n",
			fragment: "void f() {}\n",
		},
		{
			name:     "fragment first",
			src:      "#shader fragment\nvoid f() {}\n#shader vertex\nvoid v() {}\n",
			vertex:   "void v() {}\n",
			fragment: "void f() {}\n",
		},
		{
			name:     "preamble dropped",
			src:      "// shared notes\n#shader vertex\nA\n#shader fragment\nB\n",
			vertex:   "A\n",
			fragment: "B\n",
		},
		{
			name:     "indented headers",
			src:      "  #shader vertex  \nA\n\t#shader fragment\nB",
			vertex:   "A\n",
			fragment: "B\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ParseSource(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("ParseSource: %v", err)
			}
			if src.Vertex != tt.vertex {
				t.Errorf("Vertex = %q, want %q", src.Vertex, tt.vertex)
			}
			if src.Fragment != tt.fragment {
				t.Errorf("Fragment = %q, want %q", src.Fragment, tt.fragment)
			}
		})
	}
}

func TestParseSourceMissingHeader(t *testing.T) {
	for _, src := range []string{
		"",
		"#shader vertex\nA\n",
		"#shader fragment\nB\n",
		"#shader geometry\nC\n",
	} {
		if _, err := ParseSource(strings.NewReader(src)); !errors.Is(err, ErrMissingHeader) {
			t.Errorf("ParseSource(%q): expected ErrMissingHeader, got %v", src, err)
		}
	}
}

func TestDefault(t *testing.T) {
	src := Default()
	if !strings.Contains(src.Vertex, "uniform mat4 model;") {
		t.Error("default vertex stage should declare the model uniform")
	}
	for _, name := range []string{"view_pos", "light_color", "light_pos", "object_color"} {
		if !strings.Contains(src.Fragment, name) {
			t.Errorf("default fragment stage should use %s", name)
		}
	}
	if strings.Contains(src.Vertex, "#shader") || strings.Contains(src.Fragment, "#shader") {
		t.Error("section headers must not leak into stage sources")
	}
}

func TestLoadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.glsl")
	if err := os.WriteFile(path, []byte(defaultSource), 0644); err != nil {
		t.Fatalf("failed to write shader: %v", err)
	}
	src, err := LoadSource(path)
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if src != Default() {
		t.Error("loaded source differs from the embedded one")
	}

	if _, err := LoadSource(filepath.Join(t.TempDir(), "none.glsl")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
