package mesh

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/twinview/pkg/math"
)

const tetra = `OFF
# a tetrahedron
4 4 6
0 0 0
1 0 0
0 1 0
0 0 1
3 0 2 1
3 0 1 3
3 0 3 2
3 1 2 3
`

func TestRead(t *testing.T) {
	m, err := Read(strings.NewReader(tetra))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(m.Vertices) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(m.Vertices))
	}
	if len(m.Faces) != 4 {
		t.Errorf("expected 4 faces, got %d", len(m.Faces))
	}
	if m.Faces[1] != (Face{0, 1, 3}) {
		t.Errorf("face 1 = %v, want [0 1 3]", m.Faces[1])
	}
	if m.Vertices[3].Position != [3]float32{0, 0, 1} {
		t.Errorf("vertex 3 = %v", m.Vertices[3].Position)
	}
	if m.IndexCount() != 12 || len(m.Indices()) != 12 {
		t.Errorf("IndexCount = %d, len(Indices) = %d", m.IndexCount(), len(m.Indices()))
	}

	if m.Bounds.Min != (math.Vec3{}) || m.Bounds.Max != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("bounds = %+v", m.Bounds)
	}
	if c := m.Bounds.Center(); c != (math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Errorf("center = %v", c)
	}
}

func TestFaceNormals(t *testing.T) {
	// One triangle in the z=0 plane, counter-clockwise seen from +z.
	src := "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n"
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	// (p1-p3) x (p2-p3) with p1=(0,0,0), p2=(1,0,0), p3=(0,1,0) points to +z.
	for i, v := range m.Vertices {
		if v.Normal != [3]float32{0, 0, 1} {
			t.Errorf("vertex %d normal = %v, want (0, 0, 1)", i, v.Normal)
		}
	}
}

func TestQuadIsTriangulated(t *testing.T) {
	src := "OFF 4 1 0\n0 0 0\n1 0 0\n1 1 0\n0 1 0\n4 0 1 2 3\n"
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []Face{{0, 1, 2}, {0, 2, 3}}
	if len(m.Faces) != len(want) {
		t.Fatalf("expected %d faces, got %d", len(want), len(m.Faces))
	}
	for i := range want {
		if m.Faces[i] != want[i] {
			t.Errorf("face %d = %v, want %v", i, m.Faces[i], want[i])
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not off", "PLY\n1 0 0\n0 0 0\n"},
		{"missing counts", "OFF\n"},
		{"truncated vertices", "OFF\n3 1 0\n0 0 0\n1 0 0\n"},
		{"bad coordinate", "OFF\n1 0 0\n0 zero 0\n"},
		{"index out of range", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1 5\n"},
		{"short face", "OFF\n3 1 0\n0 0 0\n1 0 0\n0 1 0\n3 0 1\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.src)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestReadNotOFF(t *testing.T) {
	_, err := Read(strings.NewReader("PLY\n"))
	if !errors.Is(err, ErrNotOFF) {
		t.Errorf("expected ErrNotOFF, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.off")
	if err := os.WriteFile(path, []byte(tetra), 0644); err != nil {
		t.Fatalf("failed to write mesh: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Faces) != 4 {
		t.Errorf("expected 4 faces, got %d", len(m.Faces))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.off")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadSampleCube(t *testing.T) {
	m, err := Load(filepath.Join("..", "..", "..", "off", "cube.off"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Vertices) != 24 || len(m.Faces) != 12 {
		t.Errorf("cube has %d vertices and %d faces, want 24 and 12", len(m.Vertices), len(m.Faces))
	}
	// Faces do not share vertices, so every normal is an axis direction.
	for i, v := range m.Vertices {
		n := v.Normal
		if abs32(n[0])+abs32(n[1])+abs32(n[2]) < 0.999 || abs32(n[0])+abs32(n[1])+abs32(n[2]) > 1.001 {
			t.Errorf("vertex %d normal %v is not axis aligned", i, n)
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
