package shading

import "github.com/go-gl/mathgl/mgl32"

// TonemapReinhard compresses unbounded linear radiance into [0,1) per
// channel: c/(c+1). Monotonic, so brighter radiance always stays brighter
// after mapping. Applied once, after all lights are accumulated and before
// the display encode.
func TonemapReinhard(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{reinhard(c[0]), reinhard(c[1]), reinhard(c[2])}
}

func reinhard(x float32) float32 {
	return x / (x + 1)
}
