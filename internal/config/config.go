// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/twinview/pkg/math"
	"github.com/Faultbox/twinview/pkg/xform"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Assets  AssetsConfig  `yaml:"assets"`
	Worlds  WorldsConfig  `yaml:"worlds"`
	Camera  CameraConfig  `yaml:"camera"`
	Light   LightConfig   `yaml:"light"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// AssetsConfig holds the files shared by both worlds.
type AssetsConfig struct {
	Mesh   string `yaml:"mesh"`   // OFF mesh file
	Shader string `yaml:"shader"` // combined GLSL file; empty uses the built-in shader
}

// WorldsConfig holds the two halves of the split view.
type WorldsConfig struct {
	Left  WorldConfig `yaml:"left"`
	Right WorldConfig `yaml:"right"`
}

// WorldConfig holds the settings of one half of the view.
type WorldConfig struct {
	Script      string       `yaml:"script"`
	Method      xform.Method `yaml:"method"`
	ObjectColor Vec3         `yaml:"object_color"`
	ClearColor  Vec4         `yaml:"clear_color"`
	Transformed bool         `yaml:"transformed"` // apply transforms at startup; T toggles
}

// CameraConfig holds the initial fly camera settings.
type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	Yaw      float32 `yaml:"yaw"`   // degrees
	Pitch    float32 `yaml:"pitch"` // degrees
	FOV      float32 `yaml:"fov"`   // degrees
	Speed    float32 `yaml:"speed"` // units per second
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
}

// LightConfig holds the point light shared by both worlds.
type LightConfig struct {
	Color    Vec3 `yaml:"color"`
	Position Vec3 `yaml:"position"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Vec3 is a YAML-friendly three component vector, written as [x, y, z].
type Vec3 [3]float32

// Vec returns v as a math.Vec3.
func (v Vec3) Vec() math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Vec4 is a YAML-friendly four component vector, written as [r, g, b, a].
type Vec4 [4]float32

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "twinview",
			Width:      1600,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Assets: AssetsConfig{
			Mesh:   "off/cube.off",
			Shader: "",
		},
		Worlds: WorldsConfig{
			Left: WorldConfig{
				Script:      "transforms/transformations.txt",
				Method:      xform.Library,
				ObjectColor: Vec3{1.0, 0.5, 0.0},
				ClearColor:  Vec4{0.6, 0.6, 0.9, 1.0},
			},
			Right: WorldConfig{
				Script:      "transforms/transformations.txt",
				Method:      xform.Manual,
				ObjectColor: Vec3{0.5, 1.0, 0.0},
				ClearColor:  Vec4{0.5, 0.5, 0.8, 1.0},
			},
		},
		Camera: CameraConfig{
			Position: Vec3{0, 0, 5},
			Yaw:      -90,
			Pitch:    0,
			FOV:      45,
			Speed:    10,
			Near:     0.1,
			Far:      100,
		},
		Light: LightConfig{
			Color:    Vec3{1, 1, 1},
			Position: Vec3{5, 5, 50},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would otherwise fail late inside the renderer.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Assets.Mesh == "" {
		return fmt.Errorf("assets.mesh is required")
	}
	if c.Worlds.Left.Script == "" || c.Worlds.Right.Script == "" {
		return fmt.Errorf("both worlds need a transform script")
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov %v must be in (0, 180)", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera near/far %v/%v are invalid", c.Camera.Near, c.Camera.Far)
	}
	return nil
}
