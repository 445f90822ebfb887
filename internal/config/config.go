// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Render    RenderConfig    `yaml:"render"`
	Controls  ControlsConfig  `yaml:"controls"`
	Animation AnimationConfig `yaml:"animation"`
	Scene     SceneConfig     `yaml:"scene"`
	Logging   LoggingConfig   `yaml:"logging"`
	Debug     DebugConfig     `yaml:"debug"`
}

// RenderConfig holds projection and rasterization settings.
type RenderConfig struct {
	FOVDegrees     float64 `yaml:"fov_degrees"`
	LinePoints     int     `yaml:"line_points"`     // Points per tessellated edge
	CharacterRatio float64 `yaml:"character_ratio"` // Terminal cell height / width
	MinDepth       float64 `yaml:"min_depth"`       // Projection depth clamp
	NearPlane      float64 `yaml:"near_plane"`
	Workers        int     `yaml:"workers"` // 0 = no limit
}

// ControlsConfig holds input and timing settings.
type ControlsConfig struct {
	LookStep float64       `yaml:"look_step"` // Radians per key press
	MoveStep float64       `yaml:"move_step"`
	TickRate time.Duration `yaml:"tick_rate"`
	FPS      int           `yaml:"fps"`
}

// AnimationConfig holds defaults for time-animated rotations.
type AnimationConfig struct {
	SpinRate float64 `yaml:"spin_rate"` // Radians per millisecond
}

// SceneConfig lists the objects drawn each frame.
type SceneConfig struct {
	Objects []ObjectConfig `yaml:"objects"`
}

// ObjectConfig describes one solid in the scene.
type ObjectConfig struct {
	Name       string         `yaml:"name"`
	Solid      string         `yaml:"solid"` // polygon, square, pentagram, pentaface, cube, dodecahedron
	Color      string         `yaml:"color"` // tcell color name or #rrggbb
	Offset     [3]float64     `yaml:"offset"`
	Resolution int            `yaml:"resolution"`
	Rotation   RotationConfig `yaml:"rotation"`
	Vertices   [][3]float64   `yaml:"vertices"` // Only for solid: polygon
}

// RotationConfig is either a spin (Rate != 0) or a fixed Tait-Bryan pose.
type RotationConfig struct {
	Axis  [3]float64 `yaml:"axis"`
	Rate  float64    `yaml:"rate"` // Radians per millisecond
	Roll  float64    `yaml:"roll"` // Degrees
	Pitch float64    `yaml:"pitch"`
	Yaw   float64    `yaml:"yaw"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer tooling settings.
type DebugConfig struct {
	CaptureDir string `yaml:"capture_dir"` // Frame captures (p key)
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			FOVDegrees:     45,
			LinePoints:     200,
			CharacterRatio: 1.8,
			MinDepth:       1e-6,
			NearPlane:      1.0,
			Workers:        0,
		},
		Controls: ControlsConfig{
			LookStep: 0.05,
			MoveStep: 0.05,
			TickRate: 250 * time.Millisecond,
			FPS:      30,
		},
		Animation: AnimationConfig{
			SpinRate: 0.001,
		},
		Scene: SceneConfig{
			Objects: []ObjectConfig{
				{
					Name:     "pentagram",
					Solid:    "pentagram",
					Color:    "red",
					Offset:   [3]float64{0, 0, 7},
					Rotation: RotationConfig{Axis: [3]float64{0, 1, 0}},
				},
				{
					Name:     "cube",
					Solid:    "cube",
					Offset:   [3]float64{0, 0, 7},
					Rotation: RotationConfig{Axis: [3]float64{1, 1, 0}},
				},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "dddragon.log",
		},
		Debug: DebugConfig{
			CaptureDir: "captures",
		},
	}
}
