package xform

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/Faultbox/twinview/pkg/math"
)

const mixedScript = `some header text
#Rotation
0 0 0
0 1 0
45
#Translation
1 2 3
# a stray comment
#Shearing
y 0.25
#Scaling
1 1 1
2 2 2
#Translation
-1 0 0
#Reflection
0 0 1 -2
`

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func TestParseOrderIsPermutation(t *testing.T) {
	s := mustParse(t, mixedScript)

	if s.Len() != 6 {
		t.Fatalf("Len = %d, want 6", s.Len())
	}

	var orders []int
	for _, k := range Kinds() {
		for _, op := range s.OfKind(k) {
			orders = append(orders, op.Order)
		}
	}
	sort.Ints(orders)
	for i, o := range orders {
		if o != i {
			t.Fatalf("orders = %v, want 0..%d", orders, s.Len()-1)
		}
	}
	for i, op := range s.Ops {
		if op.Order != i {
			t.Errorf("Ops[%d].Order = %d", i, op.Order)
		}
	}
}

func TestParseInterleavedKinds(t *testing.T) {
	s := mustParse(t, mixedScript)

	wantKinds := []Kind{Rotation, Translation, Shearing, Scaling, Translation, Reflection}
	for i, k := range wantKinds {
		if s.Ops[i].Kind != k {
			t.Errorf("Ops[%d].Kind = %v, want %v", i, s.Ops[i].Kind, k)
		}
	}

	tr := s.Translations()
	if len(tr) != 2 || tr[0].Order != 1 || tr[1].Order != 4 {
		t.Errorf("Translations orders = %+v, want [1 4]", tr)
	}

	counts := s.Counts()
	if counts[Translation] != 2 || counts[Rotation] != 1 || counts[Scaling] != 1 ||
		counts[Reflection] != 1 || counts[Shearing] != 1 {
		t.Errorf("Counts = %v", counts)
	}
}

func TestParsePayloads(t *testing.T) {
	s := mustParse(t, mixedScript)

	rot := s.Rotations()[0]
	if rot.Point != (math.Vec3{}) || rot.Axis != (math.Vec3{Y: 1}) || rot.Degrees != 45 {
		t.Errorf("rotation = %+v", rot)
	}
	if rot.Line != 2 {
		t.Errorf("rotation line = %d, want 2", rot.Line)
	}

	sc := s.Scalings()[0]
	if sc.Point != (math.Vec3{X: 1, Y: 1, Z: 1}) || sc.Factors != (math.Vec3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("scaling = %+v", sc)
	}

	sh := s.Shearings()[0]
	if sh.ShearAxis != 'y' || sh.Shear != 0.25 {
		t.Errorf("shearing = %+v", sh)
	}

	rf := s.Reflections()[0]
	if rf.Plane != [4]float32{0, 0, 1, -2} {
		t.Errorf("reflection = %+v", rf)
	}
}

func TestParsePayloadLayout(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"one line", "#Rotation\n1 2 3 0 0 1 90\n"},
		{"three lines", "#Rotation\n1 2 3\n0 0 1\n90\n"},
		{"crlf", "#Rotation\r\n1 2 3\r\n0 0 1\r\n90\r\n"},
		{"no trailing newline", "#Rotation\n1 2 3\n0 0 1\n90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustParse(t, tt.src)
			if s.Len() != 1 {
				t.Fatalf("Len = %d, want 1", s.Len())
			}
			op := s.Ops[0]
			if op.Point != (math.Vec3{X: 1, Y: 2, Z: 3}) || op.Axis != (math.Vec3{Z: 1}) || op.Degrees != 90 {
				t.Errorf("op = %+v", op)
			}
		})
	}
}

func TestParseSkipsUnknownLines(t *testing.T) {
	s := mustParse(t, "hello\n#translation\n #Translation\n\n#Translation\n1 2 3\ntrailing\n")
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if s.Ops[0].Offset != (math.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("offset = %v", s.Ops[0].Offset)
	}
}

func TestParseEmpty(t *testing.T) {
	s := mustParse(t, "")
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantLine  int
		wantKind  Kind
		wantOrder int
	}{
		{"truncated at eof", "#Translation\n1 2\n", 1, Translation, 0},
		{"marker interrupts payload", "#Translation\n1 2 3\n#Rotation\n0 0 0\n#Scaling\n", 3, Rotation, 1},
		{"bad number", "#Reflection\n0 0 one 2\n", 1, Reflection, 0},
		{"extra values", "#Translation\n1 2 3 4\n", 1, Translation, 0},
		{"trailing annotation", "#Translation\n1 2 3 # move right\n", 1, Translation, 0},
		{"long shear axis", "#Translation\n0 0 0\n#Shearing\nxy 0.5\n", 3, Shearing, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pe.Line != tt.wantLine || pe.Kind != tt.wantKind || pe.Order != tt.wantOrder {
				t.Errorf("ParseError = line %d kind %v order %d, want line %d kind %v order %d",
					pe.Line, pe.Kind, pe.Order, tt.wantLine, tt.wantKind, tt.wantOrder)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transforms.txt")
	if err := os.WriteFile(path, []byte(mixedScript), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	s, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if s.Len() != 6 {
		t.Errorf("Len = %d, want 6", s.Len())
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("/nonexistent/transforms.txt")
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FileError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("FileError should wrap os.ErrNotExist, got %v", fe.Err)
	}
}

func TestParseFileReportsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("#Scaling\n1 1 1\n"), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	_, err := ParseFile(path)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should mention the path", err)
	}
}

func TestCountMarkers(t *testing.T) {
	lines := strings.Split(mixedScript, "\n")
	counts := CountMarkers(lines)
	want := [numKinds]int{Translation: 2, Rotation: 1, Scaling: 1, Reflection: 1, Shearing: 1}
	if counts != want {
		t.Errorf("CountMarkers = %v, want %v", counts, want)
	}
}

func TestSampleScript(t *testing.T) {
	s, err := ParseFile(filepath.Join("..", "..", "transforms", "transformations.txt"))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if s.Len() != 6 {
		t.Errorf("Len = %d, want 6", s.Len())
	}
	if _, model, err := Compare(s); err != nil || model > DefaultTolerance {
		t.Errorf("Compare: model diff %v, err %v", model, err)
	}
}
