// internal/game/terrain.go
package game

import (
	"math"

	"go-artillery/internal/config"
	"go-artillery/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Terrain is a rolling heightmap across the screen, sampled every
// config.TerrainStep pixels. Heights are screen y coordinates of the
// surface (larger y is lower on screen).
type Terrain struct {
	heights []float64
	width   int
	height  int
}

// NewTerrain generates a terrain from three layered sine waves with
// random phases and amplitudes.
func NewTerrain(width, height int, rng *utils.PRNGService) *Terrain {
	samples := width/config.TerrainStep + 2
	t := &Terrain{
		heights: make([]float64, samples),
		width:   width,
		height:  height,
	}

	type wave struct {
		freq, amp, phase float64
	}
	waves := []wave{
		{freq: rng.FloatRange(0.8, 1.4), amp: rng.FloatRange(0.5, 1.0)},
		{freq: rng.FloatRange(2.0, 3.5), amp: rng.FloatRange(0.2, 0.45)},
		{freq: rng.FloatRange(5.0, 9.0), amp: rng.FloatRange(0.05, 0.15)},
	}
	for i := range waves {
		waves[i].phase = rng.Angle()
	}

	floor := float64(height) - 40
	for i := range t.heights {
		x := float64(i*config.TerrainStep) / float64(width)
		y := config.TerrainBaseHeight
		for _, w := range waves {
			y += math.Sin(x*2*math.Pi*w.freq+w.phase) * w.amp * config.TerrainAmplitude
		}
		t.heights[i] = utils.Clamp(y, 80, floor)
	}
	return t
}

// HeightAt returns the surface y at x, interpolating between samples.
// Out-of-range x clamps to the nearest edge sample.
func (t *Terrain) HeightAt(x float64) float64 {
	fi := x / config.TerrainStep
	i := int(math.Floor(fi))
	if i < 0 {
		return t.heights[0]
	}
	if i >= len(t.heights)-1 {
		return t.heights[len(t.heights)-1]
	}
	return utils.Lerp(t.heights[i], t.heights[i+1], fi-float64(i))
}

// Solid reports whether the point is at or below the surface.
func (t *Terrain) Solid(x, y float64) bool {
	return y >= t.HeightAt(x)
}

// Draw fills one vertical strip per sample column.
func (t *Terrain) Draw(screen *ebiten.Image) {
	for i := 0; i < len(t.heights)-1; i++ {
		x := float32(i * config.TerrainStep)
		top := float32(math.Min(t.heights[i], t.heights[i+1]))
		vector.DrawFilledRect(screen, x, top, config.TerrainStep, float32(t.height)-top, config.TerrainColor, false)
		vector.StrokeLine(screen, x, float32(t.heights[i]), x+config.TerrainStep, float32(t.heights[i+1]), 2, config.TerrainEdge, true)
	}
}
