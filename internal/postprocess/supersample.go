package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a rendered frame to targetSize with CatmullRom
// filtering. The render pipeline emits fully opaque frames, so no
// premultiplication pass is needed before filtering.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
