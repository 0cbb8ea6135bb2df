package snapshot

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/Faultbox/twinview/internal/engine/mesh"
	"github.com/Faultbox/twinview/internal/world"
	"github.com/Faultbox/twinview/pkg/math"
)

// Options controls the size of a snapshot.
type Options struct {
	Width       int // width of one half, in pixels
	Height      int
	Supersample int // render at this multiple of the size, then downscale
}

// DefaultOptions returns an 800x800 per side snapshot with 2x supersampling.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, Supersample: 2}
}

// Render draws both worlds of p and places them side by side, left first.
func Render(m *mesh.Mesh, p world.Pair, opts Options) *image.RGBA {
	left := RenderWorld(m, p.At(world.Left), opts)
	right := RenderWorld(m, p.At(world.Right), opts)
	return SideBySide(left, right)
}

// RenderWorld draws m as seen by w's camera with w's model matrix and colors.
func RenderWorld(m *mesh.Mesh, w *world.World, opts Options) *image.RGBA {
	ss := max(opts.Supersample, 1)
	width, height := opts.Width*ss, opts.Height*ss

	fb := NewFrameBuffer(width, height, w.Scene.ClearColor)

	model := w.ModelMatrix()
	viewProj := w.Camera.ProjectionMatrix(float32(width) / float32(height)).Mul(w.Camera.ViewMatrix())

	worldPos := make([]math.Vec3, len(m.Vertices))
	screen := make([]screenVertex, len(m.Vertices))
	visible := make([]bool, len(m.Vertices))
	for i, v := range m.Vertices {
		p := model.TransformVec3(math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]})
		worldPos[i] = p

		x, y, z, cw := viewProj.Project(p)
		if cw <= 1e-6 {
			continue
		}
		visible[i] = true
		screen[i] = screenVertex{
			x: (x/cw*0.5 + 0.5) * float32(width),
			y: (1 - (y/cw*0.5 + 0.5)) * float32(height),
			z: z / cw,
		}
	}

	viewPos := w.Camera.Position
	lightPos := vec(w.Scene.LightPos)
	lightColor := vec(w.Scene.LightColor)
	objectColor := vec(w.ObjectColor())

	for _, f := range m.Faces {
		// Triangles crossing the camera plane are dropped rather than clipped.
		if !visible[f[0]] || !visible[f[1]] || !visible[f[2]] {
			continue
		}
		c := shade(worldPos[f[0]], worldPos[f[1]], worldPos[f[2]], viewPos, lightPos, lightColor, objectColor)
		fb.Triangle(screen[f[0]], screen[f[1]], screen[f[2]], c)
	}

	if ss == 1 {
		return fb.Color
	}
	return Downsample(fb.Color, opts.Width, opts.Height)
}

// Downsample scales img to w x h with a Catmull-Rom filter.
func Downsample(img *image.RGBA, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// SideBySide places left and right next to each other, top aligned.
func SideBySide(left, right image.Image) *image.RGBA {
	lb, rb := left.Bounds(), right.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), max(lb.Dy(), rb.Dy())))
	draw.Draw(out, image.Rect(0, 0, lb.Dx(), lb.Dy()), left, lb.Min, draw.Src)
	draw.Draw(out, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), right, rb.Min, draw.Src)
	return out
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
