package render

import (
	"image/color"
	"testing"
)

func TestScaleAlpha(t *testing.T) {
	base := color.RGBA{200, 100, 50, 255}

	if got := ScaleAlpha(base, 1.0); got != color.Color(base) {
		t.Errorf("alpha 1 must return the color unchanged, got %v", got)
	}

	r, g, b, a := ScaleAlpha(base, 0).RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("alpha 0 must be fully transparent, got %v %v %v %v", r, g, b, a)
	}

	// Negative alpha clamps to transparent rather than wrapping around.
	r, g, b, a = ScaleAlpha(base, -0.5).RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("negative alpha must clamp to 0, got %v %v %v %v", r, g, b, a)
	}

	_, _, _, a = ScaleAlpha(base, 0.5).RGBA()
	if a < 0x7000 || a > 0x9000 {
		t.Errorf("alpha 0.5 produced channel %v, want roughly half of 0xffff", a)
	}
}

func TestDarkenColor(t *testing.T) {
	c := DarkenColor(color.RGBA{200, 100, 50, 255})
	want := color.RGBA{100, 50, 25, 255}
	if c != want {
		t.Errorf("DarkenColor = %v, want %v", c, want)
	}
}
