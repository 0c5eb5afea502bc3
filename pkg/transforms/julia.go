package transforms

// Julia2 is the quadratic Julia map z -> z^2 + C.
type Julia2 struct {
	C complex64
}

func (j Julia2) Next(z complex64) complex64 {
	zr, zi := real(z), imag(z)

	re := float32(zr*zr) - float32(zi*zi)
	im := float32(zr*zi) + float32(zi*zr)

	return complex(re+real(j.C), im+imag(j.C))
}

// Escape is the escape time of pixel (x, y) in a w by h image.
func (j Julia2) Escape(x, y, w, h, maxIterations int) int {
	return EscapeTime(j, PlanePoint(x, y, w, h), maxIterations)
}

var _ Transform = Julia2{}
