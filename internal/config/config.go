package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all render and scene settings.
type Config struct {
	// Output
	OutputPath string `json:"output_path"`
	Format     string `json:"format"`

	// Render settings
	RenderSize  int `json:"render_size"`
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`

	// Turntable
	Frames       int     `json:"frames"`
	OrbitDegrees float32 `json:"orbit_degrees"`

	// Scene
	Grid       GridConfig    `json:"grid"`
	Camera     CameraConfig  `json:"camera"`
	Lights     []LightConfig `json:"lights"`
	Background [3]float32    `json:"background"`
}

// GridConfig describes the sphere grid. Material parameters sweep across
// it: roughness by column (from MinRoughness up to 1) and metallic by row
// (0 to 1), all spheres sharing the display-space albedo.
type GridConfig struct {
	Rows         int        `json:"rows"`
	Cols         int        `json:"cols"`
	Spacing      float32    `json:"spacing"`
	Radius       float32    `json:"radius"`
	Albedo       [3]float32 `json:"albedo"`
	MinRoughness float32    `json:"min_roughness"`
}

// CameraConfig positions the orbit camera around the grid center.
type CameraConfig struct {
	Distance     float32 `json:"distance"`
	ElevationDeg float32 `json:"elevation_deg"`
	AzimuthDeg   float32 `json:"azimuth_deg"`
	FovDeg       float32 `json:"fov_deg"`
	Near         float32 `json:"near"`
	Far          float32 `json:"far"`
}

// LightConfig is one point light of the rig.
type LightConfig struct {
	Position  [3]float32 `json:"position"`
	Color     [3]float32 `json:"color"`
	Intensity float32    `json:"intensity"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output      string
	Format      string
	Size        int
	Supersample int
	Workers     int
	Frames      int
	Orbit       float64
}

// Resolve applies CLI overrides, then fills any remaining zero fields
// with defaults: a 5x5 grid under a four-corner white light rig, one
// supersampled 512px webp frame.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.OutputPath = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Orbit != 0 {
		c.OrbitDegrees = float32(flags.Orbit)
	}

	// Defaults for output and render settings
	if c.OutputPath == "" {
		c.OutputPath = "render"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Frames > 1 && c.OrbitDegrees == 0 {
		c.OrbitDegrees = 360
	}

	// Scene defaults
	if c.Grid.Rows <= 0 {
		c.Grid.Rows = 5
	}
	if c.Grid.Cols <= 0 {
		c.Grid.Cols = 5
	}
	if c.Grid.Spacing <= 0 {
		c.Grid.Spacing = 2.5
	}
	if c.Grid.Radius <= 0 {
		c.Grid.Radius = 1
	}
	if c.Grid.Albedo == ([3]float32{}) {
		c.Grid.Albedo = [3]float32{1, 0.71, 0.29}
	}
	if c.Grid.MinRoughness <= 0 {
		c.Grid.MinRoughness = 0.05
	}

	if c.Camera.Distance <= 0 {
		c.Camera.Distance = 18
	}
	if c.Camera.FovDeg <= 0 {
		c.Camera.FovDeg = 40
	}
	if c.Camera.Near <= 0 {
		c.Camera.Near = 0.1
	}
	if c.Camera.Far <= 0 {
		c.Camera.Far = 100
	}

	if len(c.Lights) == 0 {
		c.Lights = defaultLightRig()
	}
	if c.Background == ([3]float32{}) {
		c.Background = [3]float32{0.05, 0.06, 0.08}
	}
}

// defaultLightRig places four white lights at the corners of a plane in
// front of the grid.
func defaultLightRig() []LightConfig {
	rig := make([]LightConfig, 0, 4)
	for _, x := range []float32{-10, 10} {
		for _, y := range []float32{-10, 10} {
			rig = append(rig, LightConfig{
				Position:  [3]float32{x, y, 10},
				Color:     [3]float32{1, 1, 1},
				Intensity: 2400,
			})
		}
	}
	return rig
}
