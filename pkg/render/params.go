package render

import (
	"errors"
	"fmt"
	"github.com/willbeason/julia-live/pkg/transforms"
)

const (
	Width         = 300
	Height        = 300
	MaxIterations = 300
)

// C parameterizes the rendered Julia set.
var C = complex64(complex(-0.8, 0.156))

// ErrInvalidParams is returned for geometry or budgets which cannot be rendered.
var ErrInvalidParams = errors.New("invalid render parameters")

// Params is everything a worker needs to compute a pixel. It is read-only once
// rendering starts.
type Params struct {
	Width, Height int
	MaxIterations int
	C             complex64
}

// Default is the fixed geometry the renderer is built with.
func Default() Params {
	return Params{
		Width:         Width,
		Height:        Height,
		MaxIterations: MaxIterations,
		C:             C,
	}
}

func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: image is %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.MaxIterations <= 0:
		return fmt.Errorf("%w: %d iterations", ErrInvalidParams, p.MaxIterations)
	}

	return nil
}

// Pixels is the number of pixels in the image.
func (p Params) Pixels() int {
	return p.Width * p.Height
}

// Contains reports whether (x, y) lies inside the image.
func (p Params) Contains(x, y int) bool {
	return x >= 0 && x < p.Width && y >= 0 && y < p.Height
}

func (p Params) julia() transforms.Julia2 {
	return transforms.Julia2{C: p.C}
}
