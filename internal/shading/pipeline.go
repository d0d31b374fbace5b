package shading

import "github.com/go-gl/mathgl/mgl32"

// SurfaceSample is the per-fragment geometry handed from the vertex stage
// to the shading pipeline. WorldNormal and ViewDirection must be unit
// length at the point of use; interpolated values have to be renormalized
// first, since linear interpolation does not preserve unit length.
type SurfaceSample struct {
	WorldPosition mgl32.Vec3
	WorldNormal   mgl32.Vec3
	ViewDirection mgl32.Vec3 // from the surface point toward the camera
}

// Shade runs the full per-fragment pipeline: decode the albedo to linear,
// accumulate every active light through the BRDF, tone-map the total, and
// re-encode for display. Alpha is always 1. The decode and encode each
// happen exactly once, here and nowhere else.
//
// Shade is a pure function of its inputs and always returns a color; it is
// safe to call concurrently across fragments as long as the light set is
// not mutated mid-frame.
func Shade(sample SurfaceSample, m Material, lights *LightSet) mgl32.Vec4 {
	linear := m
	linear.Albedo = DecodeColor(m.Albedo)

	var total mgl32.Vec3
	for i := 0; i < lights.Active(); i++ {
		total = total.Add(EvaluateBRDF(lights.At(i), sample, linear))
	}

	display := EncodeColor(TonemapReinhard(total))
	return display.Vec4(1)
}
