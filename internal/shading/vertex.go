package shading

import "github.com/go-gl/mathgl/mgl32"

// CameraState is the per-frame camera snapshot. WorldToClip is
// projection*view; WorldPosition only feeds view directions and is never
// consumed by the shading math itself.
type CameraState struct {
	WorldToClip   mgl32.Mat4
	WorldPosition mgl32.Vec3
}

// ObjectTransform pairs a local-to-world matrix with its normal matrix,
// computed once per object rather than per vertex.
type ObjectTransform struct {
	LocalToWorld mgl32.Mat4
	normal       mgl32.Mat3
}

// NewObjectTransform precomputes the normal matrix as the inverse-transpose
// of the upper-left 3x3, which keeps normals perpendicular under
// non-uniform scale. A singular block falls back to the plain 3x3.
func NewObjectTransform(localToWorld mgl32.Mat4) ObjectTransform {
	m3 := mgl32.Mat3FromCols(
		localToWorld.Col(0).Vec3(),
		localToWorld.Col(1).Vec3(),
		localToWorld.Col(2).Vec3(),
	)
	normal := m3
	if m3.Det() != 0 {
		normal = m3.Inv().Transpose()
	}
	return ObjectTransform{LocalToWorld: localToWorld, normal: normal}
}

// VertexOutput is one transformed vertex: the clip-space position for the
// rasterizer plus the world-space attributes the fragment stage
// interpolates.
type VertexOutput struct {
	ClipPosition mgl32.Vec4
	Sample       SurfaceSample
}

// TransformVertex runs the geometric vertex stage for a single vertex.
func TransformVertex(xf ObjectTransform, cam CameraState, localPos, localNormal mgl32.Vec3) VertexOutput {
	world := xf.LocalToWorld.Mul4x1(localPos.Vec4(1))
	wp := world.Vec3()

	return VertexOutput{
		ClipPosition: cam.WorldToClip.Mul4x1(world),
		Sample: SurfaceSample{
			WorldPosition: wp,
			WorldNormal:   normalizeOrZero(xf.normal.Mul3x1(localNormal)),
			ViewDirection: normalizeOrZero(cam.WorldPosition.Sub(wp)),
		},
	}
}
