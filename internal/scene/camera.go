package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-grid-renderer/internal/shading"
)

// OrbitCamera swings around a target point on a fixed-radius orbit.
// StateAt produces the camera snapshot for one frame; the turntable
// driver advances the azimuth between frames.
type OrbitCamera struct {
	Target       mgl32.Vec3
	Distance     float32
	ElevationDeg float32
	FovDeg       float32
	Aspect       float32
	Near         float32
	Far          float32
}

// StateAt returns the camera state for the given azimuth in degrees,
// measured around the +Y axis with 0 degrees on +Z. Elevation tilts the
// orbit up toward +Y.
func (c OrbitCamera) StateAt(azimuthDeg float32) shading.CameraState {
	az := float64(mgl32.DegToRad(azimuthDeg))
	el := float64(mgl32.DegToRad(c.ElevationDeg))

	eye := c.Target.Add(mgl32.Vec3{
		c.Distance * float32(math.Cos(el)*math.Sin(az)),
		c.Distance * float32(math.Sin(el)),
		c.Distance * float32(math.Cos(el)*math.Cos(az)),
	})

	view := mgl32.LookAtV(eye, c.Target, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovDeg), c.Aspect, c.Near, c.Far)

	return shading.CameraState{
		WorldToClip:   proj.Mul4(view),
		WorldPosition: eye,
	}
}
