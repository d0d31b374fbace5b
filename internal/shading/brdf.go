package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// grazingEps keeps the specular denominator away from zero at grazing
// angles.
const grazingEps = 1e-5

// minRoughness is the floor the evaluator enforces. The distribution term
// is well defined at zero roughness but the geometry term degrades
// numerically near the bottom of the domain.
const minRoughness = 0.001

// FresnelSchlick is the Schlick approximation of the Fresnel term:
// the fraction of light reflected specularly, given cos of the angle
// between the view direction and the half-vector.
func FresnelSchlick(cosTheta float32, f0 mgl32.Vec3) mgl32.Vec3 {
	m := 1 - max(cosTheta, 0)
	m5 := m * m * m * m * m
	return f0.Add(mgl32.Vec3{1 - f0[0], 1 - f0[1], 1 - f0[2]}.Mul(m5))
}

// DistributionGGX is the GGX/Trowbridge-Reitz microfacet normal
// distribution with a2 = roughness² (roughness is squared once).
func DistributionGGX(n, h mgl32.Vec3, roughness float32) float32 {
	a2 := roughness * roughness
	ndh := max(n.Dot(h), 0)
	d := ndh*ndh*(a2-1) + 1
	return a2 / (math.Pi * d * d)
}

// GeometrySmith is the Smith joint shadowing-masking term in the
// Schlick-GGX form, k = (roughness+1)²/8.
func GeometrySmith(n, wo, wi mgl32.Vec3, roughness float32) float32 {
	k := (roughness + 1) * (roughness + 1) / 8
	return geometrySchlickGGX(n.Dot(wo), k) * geometrySchlickGGX(n.Dot(wi), k)
}

func geometrySchlickGGX(ndv, k float32) float32 {
	nv := max(ndv, 0)
	return nv / (nv*(1-k) + k)
}

// EvaluateBRDF returns the outgoing radiance contributed by one light:
// Cook-Torrance microfacet specular plus Lambertian diffuse, weighted so
// the two lobes never sum past the incoming energy. The Fresnel term
// weights the specular lobe exactly once. A light behind the surface
// contributes exactly zero.
//
// The material's albedo must already be linear; Shade handles the decode.
// Roughness is clamped into [0.001, 1] and metallic into [0, 1] here, so
// out-of-domain values degrade instead of failing.
func EvaluateBRDF(light PointLight, sample SurfaceSample, m Material) mgl32.Vec3 {
	roughness := mgl32.Clamp(m.Roughness, minRoughness, 1)
	metallic := mgl32.Clamp(m.Metallic, 0, 1)

	n := sample.WorldNormal
	wo := sample.ViewDirection
	wi := normalizeOrZero(light.Position.Sub(sample.WorldPosition))

	ndl := n.Dot(wi)
	if ndl <= 0 {
		return mgl32.Vec3{}
	}

	h := normalizeOrZero(wi.Add(wo))
	f0 := BaseReflectance(m.Albedo, metallic)
	f := FresnelSchlick(wo.Dot(h), f0)

	d := DistributionGGX(n, h, roughness)
	g := GeometrySmith(n, wo, wi, roughness)
	spec := d * g / (4 * max(n.Dot(wo), grazingEps) * max(ndl, grazingEps))

	// Energy split: whatever the Fresnel term does not reflect specularly
	// feeds the diffuse lobe, and metals have no diffuse lobe at all.
	kd := mgl32.Vec3{1 - f[0], 1 - f[1], 1 - f[2]}.Mul(1 - metallic)
	diffuse := mulElem(kd, m.Albedo).Mul(1 / math.Pi)

	out := diffuse.Add(f.Mul(spec))
	return mulElem(out, light.IrradianceAt(sample.WorldPosition)).Mul(ndl)
}
