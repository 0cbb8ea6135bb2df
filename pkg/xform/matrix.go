package xform

import (
	gomath "math"

	"github.com/Faultbox/twinview/pkg/math"
)

// DefaultTolerance is the largest element difference at which two matrices
// built by different methods are still considered equal.
const DefaultTolerance = 1e-4

// M4x4 is a 4x4 matrix in row-major order: m[row][col].
// Points are column vectors, so A.Mul(B) applies B first.
type M4x4 [4][4]float32

// Identity returns the identity matrix.
func Identity() M4x4 {
	return M4x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Transpose returns the transpose of m.
func (m M4x4) Transpose() M4x4 {
	var r M4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Mul returns m * b.
func (m M4x4) Mul(b M4x4) M4x4 {
	var r M4x4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for i := 0; i < 4; i++ {
				sum += m[row][i] * b[i][col]
			}
			r[row][col] = sum
		}
	}
	return r
}

// TransformPoint applies m to p with w=1.
func (m M4x4) TransformPoint(p math.Vec3) math.Vec3 {
	in := [4]float32{p.X, p.Y, p.Z, 1}
	var out [4]float32
	for row := 0; row < 4; row++ {
		for i := 0; i < 4; i++ {
			out[row] += m[row][i] * in[i]
		}
	}
	if out[3] != 0 && out[3] != 1 {
		return math.Vec3{X: out[0] / out[3], Y: out[1] / out[3], Z: out[2] / out[3]}
	}
	return math.Vec3{X: out[0], Y: out[1], Z: out[2]}
}

// MaxAbsDiff returns the largest absolute element difference between m and b.
func (m M4x4) MaxAbsDiff(b M4x4) float32 {
	var d float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			v := float32(gomath.Abs(float64(m[row][col] - b[row][col])))
			if v > d {
				d = v
			}
		}
	}
	return d
}

// ApproxEqual reports whether every element of m is within tol of b.
func (m M4x4) ApproxEqual(b M4x4, tol float32) bool {
	return m.MaxAbsDiff(b) <= tol
}

// FromMat4 converts a column-major library matrix to row-major form.
// The logical matrix is unchanged; only the storage order is transposed.
func FromMat4(m math.Mat4) M4x4 {
	var r M4x4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row][col] = m[col*4+row]
		}
	}
	return r
}

// ToMat4 converts m to the column-major library layout.
func (m M4x4) ToMat4() math.Mat4 {
	var r math.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[col*4+row] = m[row][col]
		}
	}
	return r
}
