package render

import (
	"github.com/willbeason/julia-live/pkg/pixels"
	"image"
)

// Reference renders the whole image on the calling goroutine.
func Reference(p Params) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))

	for y := 0; y < p.Height; y++ {
		Row(p, y, func(r pixels.Result) {
			img.SetRGBA(r.X, r.Y, r.Color)
		})
	}

	return img
}
