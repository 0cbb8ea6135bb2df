package xform

import (
	gomath "math"

	"github.com/Faultbox/twinview/pkg/math"
)

// ManualBuilder derives every matrix from explicit formulas in row-major form.
type ManualBuilder struct{}

// Translate returns the identity with t in the last column.
func (ManualBuilder) Translate(t math.Vec3) M4x4 {
	return M4x4{
		{1, 0, 0, t.X},
		{0, 1, 0, t.Y},
		{0, 0, 1, t.Z},
		{0, 0, 0, 1},
	}
}

func (ManualBuilder) scale(s math.Vec3) M4x4 {
	return M4x4{
		{s.X, 0, 0, 0},
		{0, s.Y, 0, 0},
		{0, 0, s.Z, 0},
		{0, 0, 0, 1},
	}
}

// Scale scales by s about point p.
func (b ManualBuilder) Scale(p, s math.Vec3) M4x4 {
	return b.Translate(p).Mul(b.scale(s)).Mul(b.Translate(p.Neg()))
}

func (ManualBuilder) rotateX(deg float32) M4x4 {
	rad := float64(deg) * (gomath.Pi / 180)
	c := float32(gomath.Cos(rad))
	s := float32(gomath.Sin(rad))
	return M4x4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// Rotate rotates by deg degrees about axis through p.
func (b ManualBuilder) Rotate(p, axis math.Vec3, deg float32) M4x4 {
	m := AlignTransform(axis)
	t := b.Translate(p.Neg())
	tinv := b.Translate(p)

	return tinv.Mul(m.Transpose()).Mul(b.rotateX(deg)).Mul(m).Mul(t)
}

// Reflect mirrors across the plane ax + by + cz + d = 0.
func (b ManualBuilder) Reflect(plane [4]float32) M4x4 {
	m := AlignTransform(math.Vec3{X: plane[0], Y: plane[1], Z: plane[2]})
	anchor := planeAnchor(plane)
	t := b.Translate(anchor.Neg())
	tinv := b.Translate(anchor)
	s := b.Scale(math.Vec3{}, math.Vec3{X: -1, Y: 1, Z: 1})

	return tinv.Mul(m.Transpose()).Mul(s).Mul(m).Mul(t)
}

// Shear offsets the two other coordinates by k times the axis coordinate.
// An axis other than 'x', 'y' or 'z' yields the zero matrix.
func (ManualBuilder) Shear(axis byte, k float32) M4x4 {
	switch axis {
	case 'x':
		return M4x4{
			{1, 0, 0, 0},
			{k, 1, 0, 0},
			{k, 0, 1, 0},
			{0, 0, 0, 1},
		}
	case 'y':
		return M4x4{
			{1, k, 0, 0},
			{0, 1, 0, 0},
			{0, k, 1, 0},
			{0, 0, 0, 1},
		}
	case 'z':
		return M4x4{
			{1, 0, k, 0},
			{0, 1, k, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		}
	}
	return M4x4{}
}
