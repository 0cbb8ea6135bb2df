package config

import (
	"flag"

	"github.com/Faultbox/twinview/pkg/xform"
)

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagSaveConfig  = flag.String("save-config", "", "Write the effective config to this path and exit")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagMesh        = flag.String("mesh", "", "OFF mesh to display")
	flagShader      = flag.String("shader", "", "Combined GLSL shader file")
	flagScript      = flag.String("script", "", "Transform script for both worlds")
	flagLeft        = flag.String("left", "", "Transform script for the left world")
	flagRight       = flag.String("right", "", "Transform script for the right world")
	flagLeftMethod  = flag.String("left-method", "", "Method for the left world (library|manual)")
	flagRightMethod = flag.String("right-method", "", "Method for the right world (library|manual)")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagTransformed = flag.Bool("transformed", false, "Start both worlds with transforms applied")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the path given via --save-config, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMesh != "" {
		cfg.Assets.Mesh = *flagMesh
	}
	if *flagShader != "" {
		cfg.Assets.Shader = *flagShader
	}
	if *flagScript != "" {
		cfg.Worlds.Left.Script = *flagScript
		cfg.Worlds.Right.Script = *flagScript
	}
	if *flagLeft != "" {
		cfg.Worlds.Left.Script = *flagLeft
	}
	if *flagRight != "" {
		cfg.Worlds.Right.Script = *flagRight
	}
	if *flagLeftMethod != "" {
		m, err := xform.ParseMethod(*flagLeftMethod)
		if err != nil {
			return err
		}
		cfg.Worlds.Left.Method = m
	}
	if *flagRightMethod != "" {
		m, err := xform.ParseMethod(*flagRightMethod)
		if err != nil {
			return err
		}
		cfg.Worlds.Right.Method = m
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagTransformed {
		cfg.Worlds.Left.Transformed = true
		cfg.Worlds.Right.Transformed = true
	}
	return nil
}
