// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Input tracks keyboard and mouse state across frames.
type Input struct {
	held    map[sdl.Scancode]bool
	pressed map[sdl.Scancode]bool

	mouseX, mouseY int32
	deltaX, deltaY int32
	wheel          float32
	buttons        map[uint8]bool

	width, height int32
	resized       bool
	quit          bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		held:    make(map[sdl.Scancode]bool),
		pressed: make(map[sdl.Scancode]bool),
		buttons: make(map[uint8]bool),
	}
}

// Update polls SDL events for this frame.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.beginFrame()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(event)
	}
	return i.quit
}

func (i *Input) beginFrame() {
	clear(i.pressed)
	i.deltaX, i.deltaY = 0, 0
	i.wheel = 0
	i.resized = false
}

func (i *Input) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.quit = true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.width, i.height = e.Data1, e.Data2
			i.resized = true
		}

	case *sdl.KeyboardEvent:
		code := e.Keysym.Scancode
		if e.Type == sdl.KEYDOWN {
			// Auto-repeat does not count as a new press.
			if e.Repeat == 0 {
				i.pressed[code] = true
			}
			i.held[code] = true
		} else if e.Type == sdl.KEYUP {
			delete(i.held, code)
		}

	case *sdl.MouseMotionEvent:
		i.mouseX, i.mouseY = e.X, e.Y
		i.deltaX += e.XRel
		i.deltaY += e.YRel

	case *sdl.MouseButtonEvent:
		i.mouseX, i.mouseY = e.X, e.Y
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.buttons[e.Button] = true
		} else if e.Type == sdl.MOUSEBUTTONUP {
			delete(i.buttons, e.Button)
		}

	case *sdl.MouseWheelEvent:
		i.wheel += float32(e.Y)
	}
}

// IsKeyPressed reports whether the key went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	return i.pressed[scancode]
}

// IsKeyHeld reports whether the key is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// IsButtonHeld reports whether the mouse button is currently down.
func (i *Input) IsButtonHeld(button uint8) bool {
	return i.buttons[button]
}

// Axis returns +1, -1 or 0 from a pair of held keys.
func (i *Input) Axis(positive, negative sdl.Scancode) float32 {
	var v float32
	if i.held[positive] {
		v++
	}
	if i.held[negative] {
		v--
	}
	return v
}

// MousePosition returns the last known cursor position in window coordinates.
func (i *Input) MousePosition() (x, y int) {
	return int(i.mouseX), int(i.mouseY)
}

// MouseDelta returns the accumulated mouse motion this frame.
func (i *Input) MouseDelta() (dx, dy int) {
	return int(i.deltaX), int(i.deltaY)
}

// Wheel returns the vertical scroll amount this frame.
func (i *Input) Wheel() float32 {
	return i.wheel
}

// Resized reports whether the window size changed this frame, and the new size.
func (i *Input) Resized() (bool, int, int) {
	return i.resized, int(i.width), int(i.height)
}
