// Package spectrum maps visible-light wavelengths onto displayable colors.
//
// The mapping approximates the visible spectrum with piecewise linear ramps,
// dims the violet and red extremes where the eye is less sensitive, and
// applies a 0.8 gamma. All arithmetic is single precision so the same
// wavelength always yields the same bytes.
package spectrum

import (
	"image/color"
	"math"
)

const (
	// Violet is the shortest visible wavelength in nanometers.
	Violet = 380
	// Red is the longest visible wavelength in nanometers.
	Red = 780

	gamma = float32(0.8)
)

// Wavelength converts a wavelength in nanometers to an opaque color.
// Wavelengths outside [Violet, Red] are black.
func Wavelength(nm int) color.RGBA {
	w := float32(nm)

	var r, g, b float32
	switch {
	case nm >= 380 && nm <= 439:
		r, g, b = (440-w)/(440-380), 0, 1
	case nm >= 440 && nm <= 489:
		r, g, b = 0, (w-440)/(490-440), 1
	case nm >= 490 && nm <= 509:
		r, g, b = 0, 1, (510-w)/(510-490)
	case nm >= 510 && nm <= 579:
		r, g, b = (w-510)/(580-510), 1, 0
	case nm >= 580 && nm <= 644:
		r, g, b = 1, (645-w)/(645-580), 0
	case nm >= 645 && nm <= 780:
		r, g, b = 1, 0, 0
	default:
		return color.RGBA{A: 0xff}
	}

	f := factor(nm)

	return color.RGBA{
		R: normalize(r, f),
		G: normalize(g, f),
		B: normalize(b, f),
		A: 0xff,
	}
}

// factor tapers intensity towards the ends of the visible range.
func factor(nm int) float32 {
	w := float32(nm)

	switch {
	case nm >= 380 && nm <= 419:
		return 0.3 + float32(0.7*(w-380))/(420-380)
	case nm >= 701 && nm <= 780:
		return 0.3 + float32(0.7*(780-w))/(780-700)
	default:
		return 1.0
	}
}

func normalize(v, f float32) uint8 {
	p := float32(math.Pow(float64(float32(v*f)), float64(gamma)))
	return uint8(float32(p * 255))
}

// FromIterations spreads an escape time in [0, n) over the visible spectrum.
func FromIterations(i, n int) int {
	return Violet + i*(Red-Violet)/n
}

// ForIterations is the color of escape time i out of n.
func ForIterations(i, n int) color.RGBA {
	return Wavelength(FromIterations(i, n))
}
