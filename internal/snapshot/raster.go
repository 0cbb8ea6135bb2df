// Package snapshot renders worlds on the CPU and writes them as images.
package snapshot

import (
	"image"
	"image/color"
	gomath "math"

	"github.com/Faultbox/twinview/pkg/math"
)

// FrameBuffer holds a color image and a depth buffer of the same size.
type FrameBuffer struct {
	Width  int
	Height int
	Color  *image.RGBA
	Depth  []float32 // NDC depth per pixel, +Inf when empty
}

// NewFrameBuffer allocates a buffer cleared to c.
func NewFrameBuffer(w, h int, c [4]float32) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  image.NewRGBA(image.Rect(0, 0, w, h)),
		Depth:  make([]float32, w*h),
	}
	fill := color.RGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
	for i := range fb.Depth {
		fb.Depth[i] = float32(gomath.Inf(1))
		fb.Color.Pix[i*4+0] = fill.R
		fb.Color.Pix[i*4+1] = fill.G
		fb.Color.Pix[i*4+2] = fill.B
		fb.Color.Pix[i*4+3] = fill.A
	}
	return fb
}

// screenVertex is a vertex after the perspective divide, in pixel units.
type screenVertex struct {
	x, y, z float32
}

// Triangle fills the screen-space triangle with a flat color, keeping the
// nearest depth.
func (fb *FrameBuffer) Triangle(v0, v1, v2 screenVertex, c color.RGBA) {
	area := edge(v0, v1, v2.x, v2.y)
	if area > -1e-8 && area < 1e-8 {
		return
	}

	minX := clampInt(int(floor3(v0.x, v1.x, v2.x)), 0, fb.Width-1)
	maxX := clampInt(int(ceil3(v0.x, v1.x, v2.x)), 0, fb.Width-1)
	minY := clampInt(int(floor3(v0.y, v1.y, v2.y)), 0, fb.Height-1)
	maxY := clampInt(int(ceil3(v0.y, v1.y, v2.y)), 0, fb.Height-1)

	inv := 1 / area
	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := edge(v1, v2, px, py) * inv
			w1 := edge(v2, v0, px, py) * inv
			w2 := edge(v0, v1, px, py) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v0.z + w1*v1.z + w2*v2.z
			i := y*fb.Width + x
			if z >= fb.Depth[i] {
				continue
			}
			fb.Depth[i] = z
			fb.Color.SetRGBA(x, y, c)
		}
	}
}

// edge is twice the signed area of (a, b, p). Dividing by the full
// triangle's value gives barycentric weights with either winding.
func edge(a, b screenVertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// shade computes the flat Phong color of a world-space triangle, matching
// the built-in GLSL shader.
func shade(p0, p1, p2 math.Vec3, viewPos, lightPos, lightColor, objectColor math.Vec3) color.RGBA {
	n := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	center := p0.Add(p1).Add(p2).Scale(1.0 / 3)

	viewDir := viewPos.Sub(center).Normalize()
	if n.Dot(viewDir) < 0 {
		n = n.Neg()
	}
	lightDir := lightPos.Sub(center).Normalize()

	ambient := float32(0.15)
	diffuse := abs(n.Dot(lightDir))
	reflectDir := lightDir.Neg().Sub(n.Scale(2 * n.Dot(lightDir.Neg())))
	spec := 0.5 * float32(gomath.Pow(float64(max(viewDir.Dot(reflectDir), 0)), 32))

	k := ambient + diffuse + spec
	return color.RGBA{
		R: to8(k * lightColor.X * objectColor.X),
		G: to8(k * lightColor.Y * objectColor.Y),
		B: to8(k * lightColor.Z * objectColor.Z),
		A: 255,
	}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func floor3(a, b, c float32) float32 {
	return float32(gomath.Floor(float64(min(a, b, c))))
}

func ceil3(a, b, c float32) float32 {
	return float32(gomath.Ceil(float64(max(a, b, c))))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
