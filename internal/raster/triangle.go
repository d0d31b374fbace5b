package raster

import (
	"github.com/go-gl/mathgl/mgl32"

	"pbr-grid-renderer/internal/shading"
)

// screenVertex is one projected vertex ready for rasterization. World
// position, normal, and view direction arrive premultiplied by invW so
// the inner loop can interpolate them perspective-correct.
type screenVertex struct {
	x, y float32 // pixel coordinates
	z    float32 // NDC depth, smaller is nearer
	invW float32

	world  mgl32.Vec3
	normal mgl32.Vec3
	view   mgl32.Vec3
}

// rasterizeTriangle shades one triangle into the rows [yMin, yMax) of the
// framebuffer with z-buffering and the full per-pixel shading pipeline.
//
// This is the HOT PATH, designed for zero allocation in the inner loop.
// Both winding orders are accepted; the sphere grid shows every triangle
// from both sides over a turntable, so there is no backface cull.
func rasterizeTriangle(
	fb *FrameBuffer,
	v0, v1, v2 *screenVertex,
	mat shading.Material,
	lights *shading.LightSet,
	yMin, yMax int,
) {
	x0, y0, z0 := v0.x, v0.y, v0.z
	x1, y1, z1 := v1.x, v1.y, v1.z
	x2, y2, z2 := v2.x, v2.y, v2.z

	// Bounding box clipped to the framebuffer and the caller's row band
	minX := int(min(x0, x1, x2))
	maxX := int(max(x0, x1, x2)) + 1
	minY := int(min(y0, y1, y2))
	maxY := int(max(y0, y1, y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < yMin {
		minY = yMin
	}
	if maxY >= yMax {
		maxY = yMax - 1
	}
	if minX >= maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-6 && det < 1e-6 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	// Pixel loop, zero allocations
	for sy := minY; sy <= maxY; sy++ {
		dsy := float32(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float32(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z >= fb.Depth[zIdx] {
				continue
			}

			invW := w0*v0.invW + w1*v1.invW + w2*v2.invW
			if invW <= 0 {
				continue
			}
			w := 1.0 / invW

			// Perspective-correct attributes: positions are rescaled by
			// w, directions only need renormalizing.
			world := v0.world.Mul(w0).Add(v1.world.Mul(w1)).Add(v2.world.Mul(w2)).Mul(w)
			normal := v0.normal.Mul(w0).Add(v1.normal.Mul(w1)).Add(v2.normal.Mul(w2))
			view := v0.view.Mul(w0).Add(v1.view.Mul(w1)).Add(v2.view.Mul(w2))

			fb.Depth[zIdx] = z

			c := shading.Shade(shading.SurfaceSample{
				WorldPosition: world,
				WorldNormal:   safeUnit(normal),
				ViewDirection: safeUnit(view),
			}, mat, lights)

			pxIdx := zIdx * 4
			fb.Pix[pxIdx] = clamp255(c[0] * 255)
			fb.Pix[pxIdx+1] = clamp255(c[1] * 255)
			fb.Pix[pxIdx+2] = clamp255(c[2] * 255)
			fb.Pix[pxIdx+3] = clamp255(c[3] * 255)
		}
	}
}

func safeUnit(v mgl32.Vec3) mgl32.Vec3 {
	if v.Dot(v) == 0 {
		return v
	}
	return v.Normalize()
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
