// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/twinview/pkg/math"
)

// Default view settings.
const (
	DefaultSpeed       = 10.0 // units per second
	DefaultSensitivity = 0.15 // degrees per pixel
	DefaultFOV         = 45.0
	MinFOV             = 1.0
	MaxFOV             = 90.0
	MaxPitch           = 89.0
)

// FlyCamera is a free-look camera driven by yaw and pitch angles in degrees.
type FlyCamera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3

	Yaw   float32
	Pitch float32
	FOV   float32

	Near, Far float32

	Speed       float32
	Sensitivity float32

	// Pose restored by Reset.
	home pose
}

type pose struct {
	position   math.Vec3
	yaw, pitch float32
	fov        float32
}

// NewFlyCamera creates a camera at pos looking along the given yaw and pitch.
func NewFlyCamera(pos math.Vec3, yaw, pitch float32) *FlyCamera {
	c := &FlyCamera{
		Up:          math.Vec3{X: 0, Y: 1, Z: 0},
		Near:        0.1,
		Far:         100,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		home:        pose{position: pos, yaw: yaw, pitch: pitch, fov: DefaultFOV},
	}
	c.Reset()
	return c
}

// SetHome changes the pose restored by Reset and applies it.
func (c *FlyCamera) SetHome(pos math.Vec3, yaw, pitch, fov float32) {
	c.home = pose{position: pos, yaw: yaw, pitch: pitch, fov: fov}
	c.Reset()
}

// Reset returns the camera to its starting pose.
func (c *FlyCamera) Reset() {
	c.Position = c.home.position
	c.Yaw = c.home.yaw
	c.Pitch = clamp(c.home.pitch, -MaxPitch, MaxPitch)
	c.FOV = c.home.fov
	c.updateFront()
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *FlyCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), aspect, c.Near, c.Far)
}

// Right returns the camera's right direction.
func (c *FlyCamera) Right() math.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// HandleMovement moves the camera. forward and right are in [-1, 1] and
// scaled by Speed and dt seconds.
func (c *FlyCamera) HandleMovement(forward, right, dt float32) {
	step := c.Speed * dt
	c.Position = c.Position.
		Add(c.Front.Scale(forward * step)).
		Add(c.Right().Scale(right * step))
}

// HandleLook turns the camera by a mouse delta in pixels. Positive dy looks up.
func (c *FlyCamera) HandleLook(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = clamp(c.Pitch+dy*c.Sensitivity, -MaxPitch, MaxPitch)
	c.updateFront()
}

// HandleZoom narrows the field of view for positive scroll deltas.
func (c *FlyCamera) HandleZoom(delta float32) {
	c.FOV = clamp(c.FOV-delta, MinFOV, MaxFOV)
}

func (c *FlyCamera) updateFront() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))
	c.Front = math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
