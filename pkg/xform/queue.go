package xform

import (
	"fmt"

	"github.com/Faultbox/twinview/pkg/math"
)

// Builder realises each operation kind as a matrix.
type Builder interface {
	Translate(t math.Vec3) M4x4
	Scale(p, s math.Vec3) M4x4
	Rotate(p, axis math.Vec3, deg float32) M4x4
	Reflect(plane [4]float32) M4x4
	Shear(axis byte, k float32) M4x4
}

// BuilderFor returns the builder implementing method m.
func BuilderFor(m Method) (Builder, error) {
	switch m {
	case Library:
		return LibraryBuilder{}, nil
	case Manual:
		return ManualBuilder{}, nil
	}
	return nil, fmt.Errorf("unknown transform method %d", int(m))
}

// Matrix builds the matrix of a single operation with b.
func Matrix(b Builder, op Op) (M4x4, error) {
	if err := op.Validate(); err != nil {
		return Identity(), err
	}
	switch op.Kind {
	case Translation:
		return b.Translate(op.Offset), nil
	case Rotation:
		return b.Rotate(op.Point, op.Axis, op.Degrees), nil
	case Scaling:
		return b.Scale(op.Point, op.Factors), nil
	case Reflection:
		return b.Reflect(op.Plane), nil
	case Shearing:
		return b.Shear(op.ShearAxis, op.Shear), nil
	}
	return Identity(), op.invalid("unknown operation kind")
}

// Queue holds one matrix per operation, indexed by order.
type Queue []M4x4

// NewQueue returns a queue of n identity matrices.
func NewQueue(n int) Queue {
	q := make(Queue, n)
	for i := range q {
		q[i] = Identity()
	}
	return q
}

// Build fills a queue for s using method m.
// On error the returned queue keeps identity in every slot not yet filled.
func Build(s *Script, m Method) (Queue, error) {
	b, err := BuilderFor(m)
	if err != nil {
		return nil, err
	}

	q := NewQueue(s.Len())
	for _, op := range s.Ops {
		if op.Order < 0 || op.Order >= len(q) {
			return q, op.invalid(fmt.Sprintf("order out of range [0, %d)", len(q)))
		}
		mat, err := Matrix(b, op)
		if err != nil {
			return q, err
		}
		q[op.Order] = mat
	}
	return q, nil
}

// Compose folds the queue into one matrix. Slot 0 is applied first:
// the result is q[n-1] * ... * q[1] * q[0].
func (q Queue) Compose() M4x4 {
	model := Identity()
	for _, m := range q {
		model = m.Mul(model)
	}
	return model
}

// Model returns the composed matrix in the math package's layout, ready to
// upload as a uniform.
func (q Queue) Model() math.Mat4 {
	return q.Compose().ToMat4()
}
