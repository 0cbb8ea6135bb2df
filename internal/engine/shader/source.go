package shader

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingHeader is returned when a source file lacks a vertex or fragment section.
var ErrMissingHeader = errors.New("shader source needs both #shader vertex and #shader fragment sections")

//go:embed basic.glsl
var defaultSource string

// Source holds the two stages of a combined shader file.
type Source struct {
	Vertex   string
	Fragment string
}

// Default returns the embedded Phong shader.
func Default() Source {
	src, err := ParseSource(strings.NewReader(defaultSource))
	if err != nil {
		panic(fmt.Sprintf("embedded shader: %v", err))
	}
	return src
}

// LoadSource reads a combined shader file from path.
func LoadSource(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("open shader: %w", err)
	}
	defer f.Close()

	src, err := ParseSource(f)
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// ParseSource splits a combined shader file on its "#shader vertex" and
// "#shader fragment" lines. Sections may appear in either order; lines before
// the first header are dropped.
func ParseSource(r io.Reader) (Source, error) {
	var (
		vertex, fragment strings.Builder
		current          *strings.Builder
		seenV, seenF     bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		switch strings.TrimSpace(line) {
		case "#shader vertex":
			current, seenV = &vertex, true
			continue
		case "#shader fragment":
			current, seenF = &fragment, true
			continue
		}
		if current != nil {
			current.WriteString(line)
			current.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return Source{}, err
	}
	if !seenV || !seenF {
		return Source{}, ErrMissingHeader
	}

	return Source{Vertex: vertex.String(), Fragment: fragment.String()}, nil
}
