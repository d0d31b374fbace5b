package raster

import (
	"image"
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"pbr-grid-renderer/internal/scene"
	"pbr-grid-renderer/internal/shading"
)

// Options controls one frame render.
type Options struct {
	Width   int
	Height  int
	Workers int
}

// bandHeight is the scanline granularity of the worker pool. Bands own
// disjoint row ranges, so workers never touch the same pixel.
const bandHeight = 32

// nearEpsilon rejects triangles with a vertex on or behind the camera
// plane. The orbit camera keeps the grid well in front of the near plane,
// so dropping those triangles stands in for real clipping.
const nearEpsilon = 1e-3

// frameTriangle references three projected vertices plus the sphere it
// came from and its screen-row bounds for band scheduling.
type frameTriangle struct {
	v0, v1, v2 int
	sphere     int
	minY, maxY int
}

// RenderFrame rasterizes the scene from one camera state into a new
// image. The scene is a read-only snapshot for the whole frame; work is
// split across scanline bands.
func RenderFrame(sc *scene.Scene, cam shading.CameraState, mesh *Mesh, opts Options) *image.NRGBA {
	w, h := opts.Width, opts.Height
	fb := NewFrameBuffer(w, h)
	fb.Clear(
		clamp255(sc.Background[0]*255),
		clamp255(sc.Background[1]*255),
		clamp255(sc.Background[2]*255),
	)

	verts, tris := projectScene(sc, cam, mesh, w, h)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	bands := (h + bandHeight - 1) / bandHeight
	bandChan := make(chan int, workers*2)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for band := range bandChan {
				y0 := band * bandHeight
				y1 := min(y0+bandHeight, h)
				for t := range tris {
					tri := &tris[t]
					if tri.maxY < y0 || tri.minY >= y1 {
						continue
					}
					rasterizeTriangle(fb,
						&verts[tri.v0], &verts[tri.v1], &verts[tri.v2],
						sc.Spheres[tri.sphere].Material, &sc.Lights,
						y0, y1)
				}
			}
		}()
	}

	for b := 0; b < bands; b++ {
		bandChan <- b
	}
	close(bandChan)
	wg.Wait()

	return fb.Image()
}

// projectScene runs the vertex stage for every sphere instance and
// collects the surviving triangles. Vertices landing on or behind the
// camera plane drop the triangles that reference them.
func projectScene(sc *scene.Scene, cam shading.CameraState, mesh *Mesh, w, h int) ([]screenVertex, []frameTriangle) {
	verts := make([]screenVertex, 0, len(sc.Spheres)*len(mesh.Positions))
	tris := make([]frameTriangle, 0, len(sc.Spheres)*len(mesh.Triangles))
	inFront := make([]bool, len(mesh.Positions))

	halfW := float32(w) / 2
	halfH := float32(h) / 2

	for si := range sc.Spheres {
		sp := &sc.Spheres[si]
		xf := shading.NewObjectTransform(
			mgl32.Translate3D(sp.Center[0], sp.Center[1], sp.Center[2]).
				Mul4(mgl32.Scale3D(sp.Radius, sp.Radius, sp.Radius)))

		base := len(verts)
		for vi := range mesh.Positions {
			out := shading.TransformVertex(xf, cam, mesh.Positions[vi], mesh.Normals[vi])
			clip := out.ClipPosition

			var v screenVertex
			if clip.W() > nearEpsilon {
				invW := 1.0 / clip.W()
				v = screenVertex{
					x:      (clip.X()*invW + 1) * halfW,
					y:      (1 - clip.Y()*invW) * halfH,
					z:      clip.Z() * invW,
					invW:   invW,
					world:  out.Sample.WorldPosition.Mul(invW),
					normal: out.Sample.WorldNormal.Mul(invW),
					view:   out.Sample.ViewDirection.Mul(invW),
				}
				inFront[vi] = true
			} else {
				inFront[vi] = false
			}
			verts = append(verts, v)
		}

		for _, tri := range mesh.Triangles {
			if !inFront[tri[0]] || !inFront[tri[1]] || !inFront[tri[2]] {
				continue
			}
			a, b, c := base+tri[0], base+tri[1], base+tri[2]
			minY := int(min(verts[a].y, verts[b].y, verts[c].y))
			maxY := int(max(verts[a].y, verts[b].y, verts[c].y)) + 1
			if maxY < 0 || minY >= h {
				continue
			}
			tris = append(tris, frameTriangle{
				v0: a, v1: b, v2: c,
				sphere: si,
				minY:   minY, maxY: maxY,
			})
		}
	}

	return verts, tris
}
