package shading

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the fixed capacity of a LightSet.
const MaxLights = 10

// PointLight is an isotropic point emitter. Color is linear RGB and
// Intensity is radiant power, distributed over the sphere around the light.
type PointLight struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// IrradianceAt returns the light arriving at a surface point under
// inverse-square falloff: color * intensity / (4π d²). A point exactly
// coincident with the light yields zero rather than dividing by zero;
// the growth without bound as d approaches zero is a property of the
// point-light model and is deliberately not special-cased.
func (l PointLight) IrradianceAt(point mgl32.Vec3) mgl32.Vec3 {
	toLight := l.Position.Sub(point)
	d2 := toLight.Dot(toLight)
	if d2 == 0 {
		return mgl32.Vec3{}
	}
	return l.Color.Mul(l.Intensity / (4 * math.Pi * d2))
}

// LightSet is a bounded, ordered collection of point lights. Shading
// evaluates only the first Active() entries; anything past that is
// ignored. The zero value is an empty set.
type LightSet struct {
	lights [MaxLights]PointLight
	active int
}

// Add appends a light and includes it in the active prefix. Returns an
// error once the set holds MaxLights entries.
func (s *LightSet) Add(l PointLight) error {
	if s.active >= MaxLights {
		return fmt.Errorf("shading: light set full (max %d)", MaxLights)
	}
	s.lights[s.active] = l
	s.active++
	return nil
}

// SetActive declares how many entries participate in shading. Values
// outside [0, MaxLights] are clamped. Raising the count past what was
// Added exposes zero-valued lights, which contribute nothing.
func (s *LightSet) SetActive(n int) {
	if n < 0 {
		n = 0
	}
	if n > MaxLights {
		n = MaxLights
	}
	s.active = n
}

// Active returns the number of lights evaluated during shading.
func (s *LightSet) Active() int {
	return s.active
}

// At returns the i-th light. Valid for i in [0, Active()).
func (s *LightSet) At(i int) PointLight {
	return s.lights[i]
}
