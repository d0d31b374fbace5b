package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DecodeColor converts a display-space (gamma-encoded) color to linear
// light, per channel. The curved segment uses a monomial fit of the sRGB
// transfer function, so EncodeColor is not its exact inverse; round trips
// agree to about 1e-3.
func DecodeColor(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{decodeChannel(c[0]), decodeChannel(c[1]), decodeChannel(c[2])}
}

// EncodeColor converts a linear-light color to display space, per channel.
func EncodeColor(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{encodeChannel(c[0]), encodeChannel(c[1]), encodeChannel(c[2])}
}

func decodeChannel(c float32) float32 {
	if c > 0.04045 {
		return powf(c*0.9478672986+0.0521327014, 2.4)
	}
	return c * 0.0773993808
}

func encodeChannel(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*powf(c, 1/2.4) - 0.055
}

func powf(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
