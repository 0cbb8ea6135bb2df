package camera

import (
	"testing"

	"github.com/Faultbox/twinview/pkg/math"
)

func near(a, b math.Vec3) bool {
	d := a.Sub(b)
	return abs(d.X) < 1e-4 && abs(d.Y) < 1e-4 && abs(d.Z) < 1e-4
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func newDefault() *FlyCamera {
	return NewFlyCamera(math.Vec3{X: 0, Y: 0, Z: 5}, -90, 0)
}

func TestNewFlyCameraLooksDownNegativeZ(t *testing.T) {
	c := newDefault()
	if !near(c.Front, math.Vec3{Z: -1}) {
		t.Errorf("Front = %v, want (0, 0, -1)", c.Front)
	}
	if !near(c.Right(), math.Vec3{X: 1}) {
		t.Errorf("Right = %v, want (1, 0, 0)", c.Right())
	}
	if c.FOV != DefaultFOV {
		t.Errorf("FOV = %v, want %v", c.FOV, DefaultFOV)
	}
}

func TestHandleMovement(t *testing.T) {
	tests := []struct {
		name           string
		forward, right float32
		want           math.Vec3
	}{
		{"forward", 1, 0, math.Vec3{Z: 4}},
		{"backward", -1, 0, math.Vec3{Z: 6}},
		{"strafe right", 0, 1, math.Vec3{X: 1, Z: 5}},
		{"strafe left", 0, -1, math.Vec3{X: -1, Z: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newDefault()
			c.HandleMovement(tt.forward, tt.right, 0.1) // 10 units/s * 0.1s
			if !near(c.Position, tt.want) {
				t.Errorf("Position = %v, want %v", c.Position, tt.want)
			}
		})
	}
}

func TestHandleLookClampsPitch(t *testing.T) {
	c := newDefault()
	c.HandleLook(0, 10000)
	if c.Pitch != MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, MaxPitch)
	}
	c.HandleLook(0, -20000)
	if c.Pitch != -MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, -MaxPitch)
	}
}

func TestHandleLookYaw(t *testing.T) {
	c := newDefault()
	// 600 px at 0.15 deg/px turns 90 degrees to face +X.
	c.HandleLook(600, 0)
	if !near(c.Front, math.Vec3{X: 1}) {
		t.Errorf("Front = %v, want (1, 0, 0)", c.Front)
	}
}

func TestHandleZoom(t *testing.T) {
	c := newDefault()
	c.HandleZoom(5)
	if c.FOV != 40 {
		t.Errorf("FOV = %v, want 40", c.FOV)
	}
	c.HandleZoom(1000)
	if c.FOV != MinFOV {
		t.Errorf("FOV = %v, want %v", c.FOV, MinFOV)
	}
	c.HandleZoom(-1000)
	if c.FOV != MaxFOV {
		t.Errorf("FOV = %v, want %v", c.FOV, MaxFOV)
	}
}

func TestReset(t *testing.T) {
	c := newDefault()
	c.HandleMovement(1, 1, 1)
	c.HandleLook(100, 50)
	c.HandleZoom(10)
	c.Reset()

	if !near(c.Position, math.Vec3{Z: 5}) || c.Yaw != -90 || c.Pitch != 0 || c.FOV != DefaultFOV {
		t.Errorf("Reset left camera at %v yaw %v pitch %v fov %v", c.Position, c.Yaw, c.Pitch, c.FOV)
	}
}

func TestSetHome(t *testing.T) {
	c := newDefault()
	c.SetHome(math.Vec3{Y: 3}, 0, 0, 60)
	c.HandleMovement(1, 0, 1)
	c.Reset()
	if !near(c.Position, math.Vec3{Y: 3}) || c.FOV != 60 {
		t.Errorf("Reset after SetHome: position %v fov %v", c.Position, c.FOV)
	}
	if !near(c.Front, math.Vec3{X: 1}) {
		t.Errorf("Front = %v, want (1, 0, 0)", c.Front)
	}
}

func TestViewMatrixMapsTargetAhead(t *testing.T) {
	c := newDefault()
	got := c.ViewMatrix().TransformVec3(math.Vec3{})
	// The origin sits 5 units in front of the camera, on -Z in view space.
	if !near(got, math.Vec3{Z: -5}) {
		t.Errorf("view(origin) = %v, want (0, 0, -5)", got)
	}
}
