package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is indexed triangle geometry in local space. For the unit sphere
// the vertex positions double as outward normals.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Triangles [][3]int
}

// UVSphere tessellates a unit sphere with the given stack and slice
// counts. The seam column is duplicated so triangle indexing stays a
// plain grid walk; the zero-area triangles this produces at the poles are
// rejected by the rasterizer's determinant check.
func UVSphere(stacks, slices int) *Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	cols := slices + 1
	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, (stacks+1)*cols),
		Normals:   make([]mgl32.Vec3, 0, (stacks+1)*cols),
		Triangles: make([][3]int, 0, stacks*slices*2),
	}

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		y := math.Cos(phi)
		r := math.Sin(phi)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			p := mgl32.Vec3{
				float32(r * math.Cos(theta)),
				float32(y),
				float32(r * math.Sin(theta)),
			}
			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, p)
		}
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := i*cols + j
			b := a + cols
			m.Triangles = append(m.Triangles,
				[3]int{a, b, a + 1},
				[3]int{a + 1, b, b + 1},
			)
		}
	}

	return m
}
