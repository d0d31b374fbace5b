package shading

import "github.com/go-gl/mathgl/mgl32"

// Material describes one surface for the duration of a fragment
// evaluation. Albedo is authored in display (gamma) space; Shade decodes
// it to linear exactly once before any lighting math, and EvaluateBRDF
// expects it already linear. Roughness lives in (0,1] and Metallic in
// [0,1]; the evaluator clamps both at point of use so that out-of-domain
// values still produce a color.
type Material struct {
	Albedo    mgl32.Vec3
	Roughness float32
	Metallic  float32
}

// BaseReflectance returns F0, the reflectance at normal incidence:
// dielectrics get a fixed 4%, metals use the linear albedo as reflectance.
func BaseReflectance(albedo mgl32.Vec3, metallic float32) mgl32.Vec3 {
	return lerpVec3(mgl32.Vec3{0.04, 0.04, 0.04}, albedo, metallic)
}
