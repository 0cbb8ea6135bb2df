package xform

import (
	"github.com/Faultbox/twinview/pkg/math"
)

var xAxis = [3]float32{1, 0, 0}

// LibraryBuilder builds matrices with the math package and converts the column-major
// result into M4x4.
type LibraryBuilder struct{}

// Translate uses math.Translate.
func (LibraryBuilder) Translate(t math.Vec3) M4x4 {
	return FromMat4(math.TranslateVec(t))
}

// Scale composes math.Translate and math.Scale about point p.
func (LibraryBuilder) Scale(p, s math.Vec3) M4x4 {
	m := math.TranslateVec(p).
		Mul(math.ScaleVec(s)).
		Mul(math.TranslateVec(p.Neg()))
	return FromMat4(m)
}

// Rotate uses math.RotateAxis about the X axis between the alignment
// matrices, so it matches ManualBuilder.Rotate step for step.
func (LibraryBuilder) Rotate(p, axis math.Vec3, deg float32) M4x4 {
	align := AlignTransform(axis)
	m := align.ToMat4()
	minv := align.Transpose().ToMat4()

	r := math.TranslateVec(p).
		Mul(minv).
		Mul(math.RotateAxis(xAxis, math.Radians(deg))).
		Mul(m).
		Mul(math.TranslateVec(p.Neg()))
	return FromMat4(r)
}

// Reflect mirrors across the plane ax + by + cz + d = 0 using a (-1, 1, 1)
// scale in the aligned frame.
func (LibraryBuilder) Reflect(plane [4]float32) M4x4 {
	align := AlignTransform(math.Vec3{X: plane[0], Y: plane[1], Z: plane[2]})
	anchor := planeAnchor(plane)

	r := math.TranslateVec(anchor).
		Mul(align.Transpose().ToMat4()).
		Mul(math.Scale(-1, 1, 1)).
		Mul(align.ToMat4()).
		Mul(math.TranslateVec(anchor.Neg()))
	return FromMat4(r)
}

// Shear uses math.ShearX, ShearY or ShearZ with both factors set to k.
// An unknown axis yields the zero matrix, as in ManualBuilder.
func (LibraryBuilder) Shear(axis byte, k float32) M4x4 {
	switch axis {
	case 'x':
		return FromMat4(math.ShearX(k, k))
	case 'y':
		return FromMat4(math.ShearY(k, k))
	case 'z':
		return FromMat4(math.ShearZ(k, k))
	}
	return M4x4{}
}
