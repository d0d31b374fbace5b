package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-grid-renderer/internal/shading"
)

// shadeprobe evaluates one surface point through the shading pipeline and
// prints every intermediate term. Handy for checking material and light
// setups numerically before rendering a full grid.
func main() {
	albedo := flag.String("albedo", "1,1,1", "Material albedo, display-space r,g,b")
	roughness := flag.Float64("roughness", 0.5, "Material roughness")
	metallic := flag.Float64("metallic", 0, "Material metallic")
	lightPos := flag.String("light", "0,0,5", "Light position x,y,z")
	lightColor := flag.String("color", "1,1,1", "Light color r,g,b")
	intensity := flag.Float64("intensity", 2000, "Light intensity")
	point := flag.String("point", "0,0,0", "Surface point x,y,z")
	normal := flag.String("normal", "0,0,1", "Surface normal x,y,z")
	view := flag.String("view", "0,0,1", "Direction from point toward the camera x,y,z")

	flag.Parse()

	p := parseVec3("point", *point)
	n := parseVec3("normal", *normal).Normalize()
	v := parseVec3("view", *view).Normalize()

	m := shading.Material{
		Albedo:    parseVec3("albedo", *albedo),
		Roughness: float32(*roughness),
		Metallic:  float32(*metallic),
	}
	light := shading.PointLight{
		Position:  parseVec3("light", *lightPos),
		Color:     parseVec3("color", *lightColor),
		Intensity: float32(*intensity),
	}
	sample := shading.SurfaceSample{
		WorldPosition: p,
		WorldNormal:   n,
		ViewDirection: v,
	}

	// Rebuild the individual terms the evaluator combines
	albedoLin := shading.DecodeColor(m.Albedo)
	f0 := shading.BaseReflectance(albedoLin, m.Metallic)
	wi := light.Position.Sub(p)
	if wi.Dot(wi) == 0 {
		fmt.Fprintln(os.Stderr, "light coincides with surface point")
		os.Exit(1)
	}
	wi = wi.Normalize()
	h := wi.Add(v).Normalize()

	ndl := n.Dot(wi)
	ndv := n.Dot(v)
	ndh := n.Dot(h)
	d := shading.DistributionGGX(n, h, m.Roughness)
	g := shading.GeometrySmith(n, v, wi, m.Roughness)
	f := shading.FresnelSchlick(v.Dot(h), f0)
	irr := light.IrradianceAt(p)

	spec := d * g / (4 * max(ndv, 1e-5) * max(ndl, 1e-5))
	var diffuse, specular mgl32.Vec3
	for ch := 0; ch < 3; ch++ {
		diffuse[ch] = (1 - f[ch]) * (1 - m.Metallic) * albedoLin[ch] / math.Pi
		specular[ch] = f[ch] * spec
	}

	linM := m
	linM.Albedo = albedoLin
	radiance := shading.EvaluateBRDF(light, sample, linM)

	var lights shading.LightSet
	if err := lights.Add(light); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	out := shading.Shade(sample, m, &lights)

	fmt.Printf("albedo linear: %s\n", fmtVec(albedoLin))
	fmt.Printf("F0:            %s\n", fmtVec(f0))
	fmt.Printf("n·l=%.4f  n·v=%.4f  n·h=%.4f\n", ndl, ndv, ndh)
	fmt.Printf("D=%.4f  G=%.4f  F=%s\n", d, g, fmtVec(f))
	fmt.Printf("diffuse BRDF:  %s\n", fmtVec(diffuse))
	fmt.Printf("specular BRDF: %s\n", fmtVec(specular))
	fmt.Printf("irradiance:    %s\n", fmtVec(irr))
	fmt.Printf("radiance:      %s\n", fmtVec(radiance))
	fmt.Printf("tonemapped:    %s\n", fmtVec(shading.TonemapReinhard(radiance)))
	fmt.Printf("display:       %.4f %.4f %.4f (alpha %.0f)\n", out[0], out[1], out[2], out[3])
}

func parseVec3(name, s string) mgl32.Vec3 {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		fmt.Fprintf(os.Stderr, "-%s: want x,y,z, got %q\n", name, s)
		os.Exit(1)
	}
	var v mgl32.Vec3
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "-%s: %v\n", name, err)
			os.Exit(1)
		}
		v[i] = float32(f)
	}
	return v
}

func fmtVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v[0], v[1], v[2])
}
