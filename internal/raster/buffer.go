package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Pix is RGBA interleaved; Depth holds one NDC depth value per pixel,
// +Inf where nothing has been drawn, and smaller values win.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float32 // depth per pixel, len = W*H
}

// NewFrameBuffer allocates a transparent black pixel plane and an empty
// depth plane.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, n*4),
		Depth:  make([]float32, n),
	}
	inf := float32(math.Inf(1))
	for i := range fb.Depth {
		fb.Depth[i] = inf
	}
	return fb
}

// Clear fills every pixel with an opaque background color and resets the
// depth plane.
func (fb *FrameBuffer) Clear(r, g, b uint8) {
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = r
		fb.Pix[i+1] = g
		fb.Pix[i+2] = b
		fb.Pix[i+3] = 255
	}
	inf := float32(math.Inf(1))
	for i := range fb.Depth {
		fb.Depth[i] = inf
	}
}

// Image copies the pixel plane into a standard NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix)
	return img
}
