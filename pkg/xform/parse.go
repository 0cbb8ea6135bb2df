package xform

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

// payloadArity is the number of tokens that follow each marker.
var payloadArity = [numKinds]int{
	Translation: 3,
	Rotation:    7,
	Scaling:     6,
	Reflection:  4,
	Shearing:    2,
}

var errMissingPayload = errors.New("missing payload")

// ParseFile reads the script at path.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, &FileError{Path: path, Err: err}
	}
	return s, nil
}

// Parse reads a transform script.
//
// Lines equal to a marker (#Translation, #Rotation, #Scaling, #Reflection,
// #Shearing) start an operation whose whitespace-separated payload follows on
// the next lines. Every other line is ignored. Operations are numbered in file
// order regardless of kind.
//
// A payload may span several lines but must hold exactly the values its kind
// takes. Trailing text on a payload line, such as an annotation after the
// last value, is a ParseError.
func Parse(r io.Reader) (*Script, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	counts := CountMarkers(lines)
	s := &Script{}
	total := 0
	for k, n := range counts {
		s.byKind[k] = make([]int, 0, n)
		total += n
	}
	s.Ops = make([]Op, 0, total)

	order := 0
	for i := 0; i < len(lines); i++ {
		kind, ok := markerKind(lines[i])
		if !ok {
			continue
		}

		op, next, err := parseOp(lines, i, kind, order)
		if err != nil {
			return nil, err
		}
		s.byKind[kind] = append(s.byKind[kind], len(s.Ops))
		s.Ops = append(s.Ops, op)
		order++
		i = next - 1
	}
	return s, nil
}

// CountMarkers returns the number of marker lines of each kind.
func CountMarkers(lines []string) [numKinds]int {
	var counts [numKinds]int
	for _, line := range lines {
		if kind, ok := markerKind(line); ok {
			counts[kind]++
		}
	}
	return counts
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r\n"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func markerKind(line string) (Kind, bool) {
	for _, k := range Kinds() {
		if line == k.Marker() {
			return k, true
		}
	}
	return 0, false
}

// parseOp reads the payload of the marker at lines[at]. It returns the
// operation and the index of the first line after the payload.
func parseOp(lines []string, at int, kind Kind, order int) (Op, int, error) {
	fail := func(err error) (Op, int, error) {
		return Op{}, 0, &ParseError{Line: at + 1, Kind: kind, Order: order, Err: err}
	}

	want := payloadArity[kind]
	tokens := make([]string, 0, want)
	next := at + 1
	for len(tokens) < want {
		if next >= len(lines) {
			return fail(fmt.Errorf("%w: got %d of %d values", errMissingPayload, len(tokens), want))
		}
		if _, ok := markerKind(lines[next]); ok {
			return fail(fmt.Errorf("%w: got %d of %d values before line %d", errMissingPayload, len(tokens), want, next+1))
		}
		fields := strings.Fields(lines[next])
		if len(tokens)+len(fields) > want {
			return fail(fmt.Errorf("line %d: expected %d values, found extra %q", next+1, want, fields[want-len(tokens):]))
		}
		tokens = append(tokens, fields...)
		next++
	}

	op := Op{Kind: kind, Order: order, Line: at + 1}
	if kind == Shearing {
		if len(tokens[0]) != 1 {
			return fail(fmt.Errorf("shear axis %q is not a single letter", tokens[0]))
		}
		op.ShearAxis = tokens[0][0]
		tokens = tokens[1:]
	}

	vals := make([]float32, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return fail(fmt.Errorf("value %d: %w", i+1, err))
		}
		vals[i] = float32(v)
	}

	switch kind {
	case Translation:
		op.Offset = vec3(vals[0:3])
	case Rotation:
		op.Point = vec3(vals[0:3])
		op.Axis = vec3(vals[3:6])
		op.Degrees = vals[6]
	case Scaling:
		op.Point = vec3(vals[0:3])
		op.Factors = vec3(vals[3:6])
	case Reflection:
		copy(op.Plane[:], vals)
	case Shearing:
		op.Shear = vals[0]
	}
	return op, next, nil
}

func vec3(v []float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
