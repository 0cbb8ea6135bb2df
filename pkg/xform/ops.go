// Package xform builds 4x4 model matrices from an ordered script of
// geometric operations. Every operation can be realised two ways: through
// the builders of the math package (Library) or from hand-derived formulas
// (Manual). Both must produce the same matrix.
package xform

import (
	"fmt"

	"github.com/Faultbox/twinview/pkg/math"
)

// Kind identifies the type of an operation.
type Kind int

const (
	Translation Kind = iota
	Rotation
	Scaling
	Reflection
	Shearing

	numKinds
)

var kindNames = [numKinds]string{
	Translation: "Translation",
	Rotation:    "Rotation",
	Scaling:     "Scaling",
	Reflection:  "Reflection",
	Shearing:    "Shearing",
}

// String returns the marker name of the kind without the leading '#'.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Marker returns the script line that introduces an operation of this kind.
func (k Kind) Marker() string {
	return "#" + k.String()
}

// Kinds lists every operation kind in declaration order.
func Kinds() []Kind {
	return []Kind{Translation, Rotation, Scaling, Reflection, Shearing}
}

// Op is a single operation. Only the fields belonging to Kind are set.
type Op struct {
	Kind  Kind
	Order int // position among all operations in the script
	Line  int // 1-based line of the marker

	// Translation
	Offset math.Vec3

	// Rotation and Scaling: the fixed point of the transform
	Point math.Vec3

	// Rotation
	Axis    math.Vec3
	Degrees float32

	// Scaling
	Factors math.Vec3

	// Reflection: a, b, c, d of ax + by + cz + d = 0
	Plane [4]float32

	// Shearing
	ShearAxis byte
	Shear     float32
}

// Normal returns the (unnormalised) plane normal of a reflection.
func (op Op) Normal() math.Vec3 {
	return math.Vec3{X: op.Plane[0], Y: op.Plane[1], Z: op.Plane[2]}
}

// Validate reports degenerate operations that have no defined matrix.
func (op Op) Validate() error {
	switch op.Kind {
	case Rotation:
		if op.Axis == (math.Vec3{}) {
			return op.invalid("zero rotation axis")
		}
	case Reflection:
		if op.Normal() == (math.Vec3{}) {
			return op.invalid("plane normal (a, b, c) is zero")
		}
	case Shearing:
		switch op.ShearAxis {
		case 'x', 'y', 'z':
		default:
			return op.invalid(fmt.Sprintf("unknown shear axis %q", op.ShearAxis))
		}
	case Translation, Scaling:
	default:
		return op.invalid("unknown operation kind")
	}
	return nil
}

func (op Op) invalid(reason string) error {
	return &InvalidOperationError{Order: op.Order, Kind: op.Kind, Reason: reason}
}

// String formats the operation for logs and reports.
func (op Op) String() string {
	switch op.Kind {
	case Translation:
		return fmt.Sprintf("#%d Translation %v", op.Order, op.Offset)
	case Rotation:
		return fmt.Sprintf("#%d Rotation %g deg about %v through %v", op.Order, op.Degrees, op.Axis, op.Point)
	case Scaling:
		return fmt.Sprintf("#%d Scaling %v about %v", op.Order, op.Factors, op.Point)
	case Reflection:
		return fmt.Sprintf("#%d Reflection %v", op.Order, op.Plane)
	case Shearing:
		return fmt.Sprintf("#%d Shearing %c %g", op.Order, op.ShearAxis, op.Shear)
	}
	return fmt.Sprintf("#%d %v", op.Order, op.Kind)
}

// Script is a parsed transform script.
// Ops is indexed by order; byKind holds indexes into Ops grouped by kind.
type Script struct {
	Ops    []Op
	byKind [numKinds][]int
}

// Len returns the total number of operations.
func (s *Script) Len() int {
	return len(s.Ops)
}

// OfKind returns the operations of kind k in file order.
func (s *Script) OfKind(k Kind) []Op {
	if k < 0 || k >= numKinds {
		return nil
	}
	ops := make([]Op, len(s.byKind[k]))
	for i, idx := range s.byKind[k] {
		ops[i] = s.Ops[idx]
	}
	return ops
}

// Translations returns the translation operations.
func (s *Script) Translations() []Op { return s.OfKind(Translation) }

// Rotations returns the rotation operations.
func (s *Script) Rotations() []Op { return s.OfKind(Rotation) }

// Scalings returns the scaling operations.
func (s *Script) Scalings() []Op { return s.OfKind(Scaling) }

// Reflections returns the reflection operations.
func (s *Script) Reflections() []Op { return s.OfKind(Reflection) }

// Shearings returns the shearing operations.
func (s *Script) Shearings() []Op { return s.OfKind(Shearing) }

// Counts returns the number of operations per kind.
func (s *Script) Counts() map[Kind]int {
	counts := make(map[Kind]int, numKinds)
	for _, k := range Kinds() {
		counts[k] = len(s.byKind[k])
	}
	return counts
}
