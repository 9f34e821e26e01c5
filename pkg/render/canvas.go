// pkg/render/canvas.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas wraps an ebiten image as a particle drawing surface. Opacity is
// an argument of each call rather than ambient context state, so a draw
// can never leave a modified global alpha behind.
type Canvas struct {
	screen *ebiten.Image
}

// NewCanvas wraps screen for the current frame. Canvases are cheap;
// callers build one per Draw.
func NewCanvas(screen *ebiten.Image) *Canvas {
	return &Canvas{screen: screen}
}

// FillCircle draws a filled antialiased disk at (x, y), with the color
// faded to the given alpha in [0, 1].
func (c *Canvas) FillCircle(x, y, radius float64, col color.Color, alpha float64) {
	vector.DrawFilledCircle(c.screen, float32(x), float32(y), float32(radius), ScaleAlpha(col, alpha), true)
}

// ScaleAlpha fades a color by alpha in [0, 1]. All four premultiplied
// channels scale together, which keeps blending correct under ebiten's
// source-over compositing.
func ScaleAlpha(col color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return col
	}
	if alpha < 0 {
		alpha = 0
	}
	r, g, b, a := col.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}
