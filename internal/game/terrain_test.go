package game

import (
	"math"
	"testing"

	"go-artillery/internal/config"
	"go-artillery/internal/utils"
)

func TestTerrainHeightsWithinBounds(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		terrain := NewTerrain(config.ScreenWidth, config.ScreenHeight, utils.NewPRNGService(seed))
		for x := 0.0; x <= config.ScreenWidth; x += 7.3 {
			y := terrain.HeightAt(x)
			if y < 80 || y > config.ScreenHeight-40 {
				t.Fatalf("seed %d: height %v at x=%v outside playable band", seed, y, x)
			}
		}
	}
}

func TestTerrainHeightAtSamplePoints(t *testing.T) {
	terrain := NewTerrain(config.ScreenWidth, config.ScreenHeight, utils.NewPRNGService(9))
	for i := 0; i < len(terrain.heights)-1; i++ {
		x := float64(i * config.TerrainStep)
		if got := terrain.HeightAt(x); math.Abs(got-terrain.heights[i]) > 1e-9 {
			t.Fatalf("HeightAt(%v) = %v, want sample %v", x, got, terrain.heights[i])
		}
	}
}

func TestTerrainHeightAtClampsOutOfRange(t *testing.T) {
	terrain := NewTerrain(config.ScreenWidth, config.ScreenHeight, utils.NewPRNGService(3))
	if got := terrain.HeightAt(-100); got != terrain.heights[0] {
		t.Errorf("left of map = %v, want edge sample %v", got, terrain.heights[0])
	}
	last := terrain.heights[len(terrain.heights)-1]
	if got := terrain.HeightAt(config.ScreenWidth + 500); got != last {
		t.Errorf("right of map = %v, want edge sample %v", got, last)
	}
}

func TestTerrainSolid(t *testing.T) {
	terrain := NewTerrain(config.ScreenWidth, config.ScreenHeight, utils.NewPRNGService(4))
	x := 300.0
	surface := terrain.HeightAt(x)
	if terrain.Solid(x, surface-10) {
		t.Error("point above the surface reported solid")
	}
	if !terrain.Solid(x, surface+10) {
		t.Error("point below the surface reported empty")
	}
	if !terrain.Solid(x, surface) {
		t.Error("point on the surface must be solid")
	}
}
