package render

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()

	if p.Width != 300 || p.Height != 300 || p.MaxIterations != 300 {
		t.Errorf("Default() = %+v, expected 300x300 with 300 iterations", p)
	}
	if p.C != complex(-0.8, 0.156) {
		t.Errorf("Default().C = %v, expected (-0.8+0.156i)", p.C)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{name: "Valid", params: Params{Width: 1, Height: 1, MaxIterations: 1}},
		{name: "Zero width", params: Params{Width: 0, Height: 1, MaxIterations: 1}, wantErr: true},
		{name: "Negative height", params: Params{Width: 1, Height: -1, MaxIterations: 1}, wantErr: true},
		{name: "No iterations", params: Params{Width: 1, Height: 1, MaxIterations: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Validate() error = %v, expected it to wrap %v", err, ErrInvalidParams)
			}
		})
	}
}

func TestContains(t *testing.T) {
	p := Params{Width: 3, Height: 2, MaxIterations: 1}

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
		{0, -1, false},
	}

	for _, tt := range tests {
		if got := p.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestReference(t *testing.T) {
	p := Params{Width: 20, Height: 10, MaxIterations: 30, C: C}
	img := Reference(p)

	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("Reference() bounds = %v, expected 20x10", b)
	}

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if got, expected := img.RGBAAt(x, y), p.Pixel(x, y).Color; got != expected {
				t.Fatalf("Reference() at (%d, %d) = %v, expected %v", x, y, got, expected)
			}
		}
	}
}
