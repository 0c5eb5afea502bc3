package transforms

import "math"

// Bailout is the magnitude at which an orbit is considered to have escaped.
const Bailout = 2.0

// A Transform iterates a passed point.
type Transform interface {
	Next(z complex64) complex64
}

// EscapeTime iterates z under t at most maxIterations times, stopping the
// first time |z| reaches Bailout.
//
// The result is the index of the last completed iteration, so it always lies
// in [0, maxIterations). A point which escapes immediately and a point which
// escapes after one step both report 0; a point which never escapes reports
// maxIterations-1.
func EscapeTime(t Transform, z complex64, maxIterations int) int {
	i := 0
	for n := 0; n < maxIterations; n++ {
		if Abs(z) >= Bailout {
			break
		}
		z = t.Next(z)
		i = n
	}

	return i
}

// Abs is the single-precision modulus of z.
func Abs(z complex64) float32 {
	return float32(math.Hypot(float64(real(z)), float64(imag(z))))
}

// PlanePoint scales and translates pixel (x, y) of a w by h image onto the
// complex plane. The real axis spans 3.0 and the imaginary axis 2.0, both
// centered on the origin.
func PlanePoint(x, y, w, h int) complex64 {
	fw, fh := float32(w), float32(h)

	// Explicit conversions round every product so no fused multiply-add can
	// change the result on any architecture.
	dx := float32(x) - float32(0.5*fw)
	dy := float32(y) - float32(0.5*fh)

	return complex(float32(3.0*dx)/fw, float32(2.0*dy)/fh)
}
