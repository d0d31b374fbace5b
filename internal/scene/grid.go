package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-grid-renderer/internal/config"
	"pbr-grid-renderer/internal/shading"
)

// Sphere is one grid instance: unit-sphere geometry placed by center and
// radius, shaded with its own material.
type Sphere struct {
	Center   mgl32.Vec3
	Radius   float32
	Material shading.Material
}

// Scene is the immutable snapshot the renderer reads for every frame:
// sphere instances, the light rig, and the display-space background color.
type Scene struct {
	Spheres    []Sphere
	Lights     shading.LightSet
	Background mgl32.Vec3
}

// Build constructs the sphere grid from config. Roughness sweeps across
// columns from the configured minimum up to 1, metallic sweeps across rows
// from 0 to 1, and all spheres share the configured albedo. The grid lies
// in the XY plane centered on the origin. Light definitions are validated
// here, before any rendering starts.
func Build(cfg *config.Config) (*Scene, error) {
	g := cfg.Grid
	if g.Rows <= 0 || g.Cols <= 0 {
		return nil, fmt.Errorf("scene: grid must have at least one row and column, got %dx%d", g.Rows, g.Cols)
	}

	sc := &Scene{
		Spheres:    make([]Sphere, 0, g.Rows*g.Cols),
		Background: mgl32.Vec3{cfg.Background[0], cfg.Background[1], cfg.Background[2]},
	}

	albedo := mgl32.Vec3{g.Albedo[0], g.Albedo[1], g.Albedo[2]}
	halfW := float32(g.Cols-1) / 2 * g.Spacing
	halfH := float32(g.Rows-1) / 2 * g.Spacing
	for row := 0; row < g.Rows; row++ {
		metallic := axisParam(row, g.Rows)
		for col := 0; col < g.Cols; col++ {
			roughness := mgl32.Clamp(axisParam(col, g.Cols), g.MinRoughness, 1)
			sc.Spheres = append(sc.Spheres, Sphere{
				Center: mgl32.Vec3{
					float32(col)*g.Spacing - halfW,
					float32(row)*g.Spacing - halfH,
					0,
				},
				Radius: g.Radius,
				Material: shading.Material{
					Albedo:    albedo,
					Roughness: roughness,
					Metallic:  metallic,
				},
			})
		}
	}

	if len(cfg.Lights) > shading.MaxLights {
		return nil, fmt.Errorf("scene: %d lights configured, max %d", len(cfg.Lights), shading.MaxLights)
	}
	for i, l := range cfg.Lights {
		if l.Intensity < 0 {
			return nil, fmt.Errorf("scene: light %d has negative intensity %v", i, l.Intensity)
		}
		if err := sc.Lights.Add(shading.PointLight{
			Position:  mgl32.Vec3{l.Position[0], l.Position[1], l.Position[2]},
			Color:     mgl32.Vec3{l.Color[0], l.Color[1], l.Color[2]},
			Intensity: l.Intensity,
		}); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}

	return sc, nil
}

// axisParam maps a grid index onto [0, 1]. A single-element axis maps
// to 0.
func axisParam(i, n int) float32 {
	if n <= 1 {
		return 0
	}
	return float32(i) / float32(n-1)
}
