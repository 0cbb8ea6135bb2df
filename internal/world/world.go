// Package world holds one half of the split view: a transform script built
// with one method, the composed model matrix, a camera and scene colors.
package world

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/twinview/internal/config"
	"github.com/Faultbox/twinview/internal/engine/camera"
	"github.com/Faultbox/twinview/internal/logger"
	"github.com/Faultbox/twinview/pkg/math"
	"github.com/Faultbox/twinview/pkg/xform"
)

// Side identifies a half of the window.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// SideAt returns the half of a window of the given width containing x.
func SideAt(x, width int) Side {
	if float64(x) < float64(width)/2 {
		return Left
	}
	return Right
}

// Scene holds the colors and light of a world.
type Scene struct {
	ObjectColor [3]float32
	ClearColor  [4]float32
	LightColor  [3]float32
	LightPos    [3]float32
}

// ErrorColor tints the object of a world whose script failed to build.
var ErrorColor = [3]float32{0.9, 0.1, 0.1}

// World is one side of the viewer. Worlds share no mutable state.
type World struct {
	Side       Side
	Method     xform.Method
	ScriptPath string
	Scene      Scene
	Camera     *camera.FlyCamera

	// Transformed selects between the composed model matrix and identity.
	Transformed bool

	script    *xform.Script
	queue     xform.Queue
	model     math.Mat4
	err       error
	buildTime time.Duration
	log       *zap.Logger
}

// New creates the world for side from cfg. The script is not read until Build.
func New(side Side, cfg *config.Config) *World {
	wc := cfg.Worlds.Left
	if side == Right {
		wc = cfg.Worlds.Right
	}

	cam := camera.NewFlyCamera(cfg.Camera.Position.Vec(), cfg.Camera.Yaw, cfg.Camera.Pitch)
	cam.SetHome(cfg.Camera.Position.Vec(), cfg.Camera.Yaw, cfg.Camera.Pitch, cfg.Camera.FOV)
	cam.Speed = cfg.Camera.Speed
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far

	return &World{
		Side:       side,
		Method:     wc.Method,
		ScriptPath: wc.Script,
		Scene: Scene{
			ObjectColor: wc.ObjectColor,
			ClearColor:  wc.ClearColor,
			LightColor:  cfg.Light.Color,
			LightPos:    cfg.Light.Position,
		},
		Camera:      cam,
		Transformed: wc.Transformed,
		model:       math.Identity(),
		log:         logger.Named(side.String()),
	}
}

// Build reads the script and composes the model matrix with the world's
// method. A failure is recorded on the world, which then draws untransformed
// with ErrorColor.
func (w *World) Build() error {
	start := time.Now()
	err := w.build()
	w.buildTime = time.Since(start)
	w.err = err

	if err != nil {
		w.script = nil
		w.queue = nil
		w.model = math.Identity()
		w.log.Error("transform build failed",
			zap.String("script", w.ScriptPath),
			zap.Stringer("method", w.Method),
			zap.Error(err),
		)
		return err
	}

	w.log.Info("transforms built",
		zap.String("script", w.ScriptPath),
		zap.Stringer("method", w.Method),
		zap.Int("operations", w.script.Len()),
		zap.Duration("elapsed", w.buildTime),
	)
	return nil
}

func (w *World) build() error {
	s, err := xform.ParseFile(w.ScriptPath)
	if err != nil {
		return err
	}
	q, err := xform.Build(s, w.Method)
	if err != nil {
		return fmt.Errorf("%s: %w", w.ScriptPath, err)
	}
	w.script = s
	w.queue = q
	w.model = q.Model()
	return nil
}

// ModelMatrix returns the matrix to draw with: the composed transforms when
// enabled and built, identity otherwise.
func (w *World) ModelMatrix() math.Mat4 {
	if !w.Transformed || w.err != nil {
		return math.Identity()
	}
	return w.model
}

// ObjectColor returns the color to draw the mesh with.
func (w *World) ObjectColor() [3]float32 {
	if w.err != nil {
		return ErrorColor
	}
	return w.Scene.ObjectColor
}

// Err returns the build error, if any.
func (w *World) Err() error { return w.err }

// BuildTime returns how long the last Build took.
func (w *World) BuildTime() time.Duration { return w.buildTime }

// Script returns the parsed script, or nil until a Build succeeds.
func (w *World) Script() *xform.Script { return w.script }

// Queue returns the built transform queue.
func (w *World) Queue() xform.Queue { return w.queue }

// Summary describes the world for the window title.
func (w *World) Summary() string {
	state := "off"
	if w.Transformed {
		state = "on"
	}
	if w.err != nil {
		return fmt.Sprintf("%s: %s error", w.Side, w.Method)
	}
	return fmt.Sprintf("%s: %s %s [%s]", w.Side, w.Method, w.buildTime.Round(time.Microsecond), state)
}
