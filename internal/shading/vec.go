package shading

import "github.com/go-gl/mathgl/mgl32"

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// normalizeOrZero guards against degenerate directions: a zero-length
// vector stays zero instead of turning into NaN.
func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	if v.Dot(v) == 0 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}
