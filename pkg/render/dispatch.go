package render

import (
	"fmt"
	"github.com/willbeason/julia-live/pkg/pixels"
	"github.com/willbeason/julia-live/pkg/spectrum"
)

// Submitter accepts fire-and-forget jobs. *workpool.Pool is one.
type Submitter interface {
	Submit(job func()) error
}

// Sender delivers a computed pixel, reporting whether it was accepted.
// *pixels.Producer is one.
type Sender interface {
	Send(r pixels.Result) bool
}

// Pixel computes the result for (x, y).
func (p Params) Pixel(x, y int) pixels.Result {
	i := p.julia().Escape(x, y, p.Width, p.Height, p.MaxIterations)

	return pixels.Result{
		X:     x,
		Y:     y,
		Color: spectrum.ForIterations(i, p.MaxIterations),
	}
}

// Row computes scanline y in ascending x, passing each pixel to emit.
func Row(p Params, y int, emit func(pixels.Result)) {
	for x := 0; x < p.Width; x++ {
		emit(p.Pixel(x, y))
	}
}

// Dispatch submits one job per scanline. Each job sends its pixels through
// out as they are computed; what out does with a rejected pixel is its own
// policy. A Submitter which refuses work is a configuration error.
func Dispatch(pool Submitter, p Params, out Sender) error {
	if err := p.Validate(); err != nil {
		return err
	}

	for y := 0; y < p.Height; y++ {
		err := pool.Submit(func() {
			Row(p, y, func(r pixels.Result) {
				out.Send(r)
			})
		})
		if err != nil {
			return fmt.Errorf("submitting row %d: %w", y, err)
		}
	}

	return nil
}
