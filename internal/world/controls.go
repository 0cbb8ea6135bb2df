package world

import "go.uber.org/zap"

// Controls is the input routed to one world for one frame.
type Controls struct {
	Forward float32 // W/S, in [-1, 1]
	Right   float32 // D/A, in [-1, 1]

	// Mouse look delta in pixels, applied while Looking.
	Looking      bool
	LookX, LookY float32

	Zoom   float32
	Toggle bool
	Reset  bool
}

// Apply updates the world from one frame of input lasting dt seconds.
func (w *World) Apply(c Controls, dt float32) {
	if c.Toggle {
		w.Transformed = !w.Transformed
		w.log.Debug("transforms toggled", zap.Bool("transformed", w.Transformed))
	}
	if c.Reset {
		w.Camera.Reset()
		return
	}
	if c.Forward != 0 || c.Right != 0 {
		w.Camera.HandleMovement(c.Forward, c.Right, dt)
	}
	if c.Looking && (c.LookX != 0 || c.LookY != 0) {
		w.Camera.HandleLook(c.LookX, c.LookY)
	}
	if c.Zoom != 0 {
		w.Camera.HandleZoom(c.Zoom)
	}
}
