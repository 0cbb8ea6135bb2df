package xform

import (
	gomath "math"

	"github.com/Faultbox/twinview/pkg/math"
)

// AlignTransform returns an orthonormal matrix whose rows are u, v and w,
// where u is the normalised input direction. It rotates u onto the X axis,
// and its inverse is its transpose.
//
// v is u with its smallest-magnitude component zeroed and the other two
// swapped with one sign flipped, which makes it perpendicular to u and never
// zero for a non-zero u.
func AlignTransform(dir math.Vec3) M4x4 {
	u := dir.Normalize()

	i := smallestComponent(u)
	v := u.With(i, 0)
	switch i {
	case 0:
		v.Y, v.Z = v.Z, -v.Y
	case 1:
		v.X, v.Z = v.Z, -v.X
	case 2:
		v.X, v.Y = v.Y, -v.X
	}
	v = v.Normalize()
	w := u.Cross(v)

	return M4x4{
		{u.X, u.Y, u.Z, 0},
		{v.X, v.Y, v.Z, 0},
		{w.X, w.Y, w.Z, 0},
		{0, 0, 0, 1},
	}
}

// smallestComponent returns the index of the component with the smallest
// magnitude. Ties go to the lower index.
func smallestComponent(v math.Vec3) int {
	idx := 0
	lowest := gomath.Abs(float64(v.X))
	if y := gomath.Abs(float64(v.Y)); y < lowest {
		idx, lowest = 1, y
	}
	if z := gomath.Abs(float64(v.Z)); z < lowest {
		idx = 2
	}
	return idx
}

// largestComponent returns the index of the component with the largest
// magnitude. Ties go to the higher index so that z wins over x and y.
func largestComponent(v math.Vec3) int {
	idx := 2
	highest := gomath.Abs(float64(v.Z))
	if y := gomath.Abs(float64(v.Y)); y > highest {
		idx, highest = 1, y
	}
	if x := gomath.Abs(float64(v.X)); x > highest {
		idx = 0
	}
	return idx
}

// planeAnchor returns a point on the plane ax + by + cz + d = 0, placed on
// the coordinate axis whose coefficient has the largest magnitude.
func planeAnchor(plane [4]float32) math.Vec3 {
	n := math.Vec3{X: plane[0], Y: plane[1], Z: plane[2]}
	i := largestComponent(n)
	return math.Vec3{}.With(i, -plane[3]/n.Get(i))
}
