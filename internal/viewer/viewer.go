// Package viewer implements the split-screen frame loop.
package viewer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/twinview/internal/config"
	"github.com/Faultbox/twinview/internal/engine/input"
	"github.com/Faultbox/twinview/internal/engine/mesh"
	"github.com/Faultbox/twinview/internal/engine/renderer"
	"github.com/Faultbox/twinview/internal/engine/shader"
	"github.com/Faultbox/twinview/internal/engine/window"
	"github.com/Faultbox/twinview/internal/logger"
	"github.com/Faultbox/twinview/internal/snapshot"
	"github.com/Faultbox/twinview/internal/world"
)

// Viewer owns the window, the renderer and both worlds.
type Viewer struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	worlds   world.Pair
}

// New loads the assets, builds both worlds and opens the window.
func New(ctx context.Context, cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("mesh", cfg.Assets.Mesh),
		zap.String("left", cfg.Worlds.Left.Script),
		zap.String("right", cfg.Worlds.Right.Script),
	)

	m, err := mesh.Load(cfg.Assets.Mesh)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh: %w", err)
	}
	logger.Info("mesh loaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", len(m.Faces)),
	)

	src := shader.Default()
	if cfg.Assets.Shader != "" {
		if src, err = shader.LoadSource(cfg.Assets.Shader); err != nil {
			return nil, fmt.Errorf("failed to load shader: %w", err)
		}
	}

	v := &Viewer{
		config: cfg,
		worlds: world.NewPair(cfg),
	}

	// Script errors stay on their world and are shown in the title bar.
	if err := world.BuildPair(ctx, v.worlds); err != nil {
		return nil, err
	}

	// Create window (this also creates OpenGL context)
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		Shader: src,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	if err := v.renderer.SetMesh(m); err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}

	v.input = input.New()
	v.updateTitle()

	logger.Info("viewer initialized successfully")
	return v, nil
}

// Run starts the frame loop. It returns when the window closes, Escape is
// pressed or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if ctx.Err() != nil || v.input.Update() {
			v.running = false
			break
		}
		if v.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			v.running = false
			break
		}
		if v.input.IsKeyPressed(sdl.SCANCODE_F11) {
			if err := v.window.ToggleFullscreen(); err != nil {
				logger.Warn("fullscreen toggle failed", zap.Error(err))
			}
		}
		if resized, _, _ := v.input.Resized(); resized {
			v.renderer.Resize(v.window.DrawableSize())
		}

		// Input goes to the world under the cursor.
		x, _ := v.input.MousePosition()
		width, _ := v.window.GetSize()
		w := v.worlds.At(world.SideAt(x, width))
		c := controls(v.input)
		w.Apply(c, dt)
		if c.Toggle {
			v.updateTitle()
		}

		v.renderer.Draw(v.worlds.At(world.Left))
		v.renderer.Draw(v.worlds.At(world.Right))
		if v.input.IsKeyPressed(sdl.SCANCODE_F12) {
			v.screenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// Worlds returns both worlds.
func (v *Viewer) Worlds() world.Pair {
	return v.worlds
}

// screenshot saves the back buffer as a PNG in the working directory.
func (v *Viewer) screenshot() {
	pixels, width, height := v.renderer.ReadPixels()
	img, err := snapshot.FromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	path := snapshot.Filename("", "twinview", snapshot.PNG, time.Now())
	if err := snapshot.Save(path, img); err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) updateTitle() {
	v.window.SetTitle(title(v.config.Window.Title, v.worlds))
}

func title(base string, p world.Pair) string {
	parts := []string{base}
	for _, w := range p {
		parts = append(parts, w.Summary())
	}
	return strings.Join(parts, " | ")
}

// controls maps the frame's keyboard and mouse state to world controls.
func controls(in *input.Input) world.Controls {
	dx, dy := in.MouseDelta()
	return world.Controls{
		Forward: in.Axis(sdl.SCANCODE_W, sdl.SCANCODE_S),
		Right:   in.Axis(sdl.SCANCODE_D, sdl.SCANCODE_A),
		Looking: in.IsButtonHeld(sdl.BUTTON_RIGHT),
		LookX:   float32(dx),
		// Screen y grows downward; looking up is positive pitch.
		LookY:  float32(-dy),
		Zoom:   in.Wheel(),
		Toggle: in.IsKeyPressed(sdl.SCANCODE_T),
		Reset:  in.IsKeyPressed(sdl.SCANCODE_R),
	}
}
