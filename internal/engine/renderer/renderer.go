// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/twinview/internal/engine/mesh"
	"github.com/Faultbox/twinview/internal/engine/shader"
	"github.com/Faultbox/twinview/internal/logger"
	"github.com/Faultbox/twinview/internal/world"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	Shader shader.Source
}

// Renderer draws both worlds into their halves of the window.
type Renderer struct {
	config  Config
	program uint32
	mesh    *GPUMesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Each half clears only its own rectangle.
	gl.Enable(gl.SCISSOR_TEST)

	var err error
	r.program, err = shader.Compile(cfg.Shader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	logger.Debug("shader program created", zap.Uint32("program", r.program))

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.mesh != nil {
		r.mesh.Delete()
		r.mesh = nil
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// SetMesh uploads m and replaces the mesh drawn by both worlds.
func (r *Renderer) SetMesh(m *mesh.Mesh) error {
	gm, err := Upload(m)
	if err != nil {
		return err
	}
	if r.mesh != nil {
		r.mesh.Delete()
	}
	r.mesh = gm
	return nil
}

// Resize handles window resize. Sizes are in framebuffer pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders w into its half of the window.
func (r *Renderer) Draw(w *world.World) {
	vp := Split(w.Side, r.config.Width, r.config.Height)
	gl.Viewport(vp.X, vp.Y, vp.Width, vp.Height)
	gl.Scissor(vp.X, vp.Y, vp.Width, vp.Height)

	c := w.Scene.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.mesh == nil {
		return
	}

	cam := w.Camera
	gl.UseProgram(r.program)
	shader.SetMat4(r.program, "model", w.ModelMatrix())
	shader.SetMat4(r.program, "view", cam.ViewMatrix())
	shader.SetMat4(r.program, "projection", cam.ProjectionMatrix(vp.Aspect()))
	shader.SetVec3(r.program, "view_pos", cam.Position.Array())
	shader.SetVec3(r.program, "light_color", w.Scene.LightColor)
	shader.SetVec3(r.program, "light_pos", w.Scene.LightPos)
	shader.SetVec3(r.program, "object_color", w.ObjectColor())

	r.mesh.Draw()
}

// Viewport is a rectangle of the framebuffer in GL coordinates.
type Viewport struct {
	X, Y          int32
	Width, Height int32
}

// Aspect returns width / height.
func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Split returns the half of a width x height framebuffer belonging to side.
// For odd widths the right half gets the extra column.
func Split(side world.Side, width, height int) Viewport {
	half := width / 2
	if side == world.Left {
		return Viewport{X: 0, Y: 0, Width: int32(half), Height: int32(height)}
	}
	return Viewport{X: int32(half), Y: 0, Width: int32(width - half), Height: int32(height)}
}

// ReadPixels returns the whole framebuffer as tightly packed RGBA rows,
// bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
