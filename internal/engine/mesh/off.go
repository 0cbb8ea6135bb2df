package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/twinview/pkg/math"
)

// ErrNotOFF is returned when the file does not start with the OFF keyword.
var ErrNotOFF = errors.New("missing OFF header")

// FormatError describes malformed OFF content.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("off: line %d: %s", e.Line, e.Msg)
}

// Load reads an OFF mesh from path.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh: %w", err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Read parses an OFF mesh.
//
// Faces with more than three vertices are split into a triangle fan. Every
// vertex takes the normal of the last face that references it, so meshes
// render flat-shaded as long as faces do not share vertices.
func Read(r io.Reader) (*Mesh, error) {
	lr := newLineReader(r)

	header, line, err := lr.next()
	if err != nil {
		return nil, err
	}
	if len(header) == 0 || header[0] != "OFF" {
		return nil, ErrNotOFF
	}

	// Counts may share the header line.
	counts := header[1:]
	if len(counts) == 0 {
		if counts, line, err = lr.next(); err != nil {
			return nil, err
		}
	}
	if len(counts) < 2 {
		return nil, &FormatError{Line: line, Msg: "expected vertex and face counts"}
	}
	numVerts, err := strconv.Atoi(counts[0])
	if err != nil || numVerts < 0 {
		return nil, &FormatError{Line: line, Msg: fmt.Sprintf("bad vertex count %q", counts[0])}
	}
	numFaces, err := strconv.Atoi(counts[1])
	if err != nil || numFaces < 0 {
		return nil, &FormatError{Line: line, Msg: fmt.Sprintf("bad face count %q", counts[1])}
	}

	m := &Mesh{
		Vertices: make([]Vertex, numVerts),
		Faces:    make([]Face, 0, numFaces),
	}

	for i := 0; i < numVerts; i++ {
		fields, line, err := lr.next()
		if err != nil {
			return nil, err
		}
		if len(fields) < 3 {
			return nil, &FormatError{Line: line, Msg: fmt.Sprintf("vertex %d: expected 3 coordinates", i)}
		}
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(fields[k], 32)
			if err != nil {
				return nil, &FormatError{Line: line, Msg: fmt.Sprintf("vertex %d: %v", i, err)}
			}
			m.Vertices[i].Position[k] = float32(v)
		}
		p := position(m.Vertices[i])
		if i == 0 {
			m.Bounds = Bounds{Min: p, Max: p}
		} else {
			m.Bounds.Min = m.Bounds.Min.Min(p)
			m.Bounds.Max = m.Bounds.Max.Max(p)
		}
	}

	for i := 0; i < numFaces; i++ {
		fields, line, err := lr.next()
		if err != nil {
			return nil, err
		}
		poly, err := parseFace(fields, numVerts)
		if err != nil {
			return nil, &FormatError{Line: line, Msg: fmt.Sprintf("face %d: %v", i, err)}
		}
		for k := 1; k+1 < len(poly); k++ {
			face := Face{poly[0], poly[k], poly[k+1]}
			m.Faces = append(m.Faces, face)
			m.applyFaceNormal(face)
		}
	}

	return m, nil
}

func parseFace(fields []string, numVerts int) ([]uint32, error) {
	if len(fields) == 0 {
		return nil, errors.New("empty face")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 3 {
		return nil, fmt.Errorf("bad vertex count %q", fields[0])
	}
	if len(fields) < n+1 {
		return nil, fmt.Errorf("expected %d indices, got %d", n, len(fields)-1)
	}
	poly := make([]uint32, n)
	for k := 0; k < n; k++ {
		idx, err := strconv.Atoi(fields[k+1])
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= numVerts {
			return nil, fmt.Errorf("index %d out of range [0, %d)", idx, numVerts)
		}
		poly[k] = uint32(idx)
	}
	return poly, nil
}

// applyFaceNormal writes normalize((p1-p3) x (p2-p3)) to the face's vertices.
func (m *Mesh) applyFaceNormal(f Face) {
	p1 := position(m.Vertices[f[0]])
	p2 := position(m.Vertices[f[1]])
	p3 := position(m.Vertices[f[2]])
	n := p1.Sub(p3).Cross(p2.Sub(p3)).Normalize().Array()

	for _, idx := range f {
		m.Vertices[idx].Normal = n
	}
}

func position(v Vertex) math.Vec3 {
	return math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]}
}

// lineReader yields the fields of non-empty, non-comment lines.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

func (lr *lineReader) next() ([]string, int, error) {
	for lr.sc.Scan() {
		lr.line++
		text := lr.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if fields := strings.Fields(text); len(fields) > 0 {
			return fields, lr.line, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, lr.line, err
	}
	return nil, lr.line, &FormatError{Line: lr.line, Msg: "unexpected end of file"}
}
