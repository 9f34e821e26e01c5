// internal/game/tank.go
package game

import (
	"image/color"
	"math"

	"go-artillery/internal/config"
	"go-artillery/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TankType selects the shell profile of a tank. Glitches may swap it
// mid-game, so everything type-dependent reads tankStats at use time.
type TankType int

const (
	TankStandard TankType = iota
	TankHeavy
	TankScout
	tankTypeCount
)

// TankStats is the per-type shell profile.
type TankStats struct {
	Name        string
	ShellRadius float64
	Damage      int
}

var tankStats = [tankTypeCount]TankStats{
	{Name: "Standard", ShellRadius: 4, Damage: 35},
	{Name: "Heavy", ShellRadius: 6, Damage: 50},
	{Name: "Scout", ShellRadius: 3, Damage: 20},
}

func (t TankType) String() string {
	if t < 0 || t >= tankTypeCount {
		return "Unknown"
	}
	return tankStats[t].Name
}

// Stats returns the shell profile for the type. Out-of-range types
// (possible only through direct assignment) fall back to Standard.
func (t TankType) Stats() TankStats {
	if t < 0 || t >= tankTypeCount {
		return tankStats[TankStandard]
	}
	return tankStats[t]
}

// Tank is one player's vehicle, parked on the terrain surface.
type Tank struct {
	X, Y  float64
	HP    int
	Type  TankType
	Angle float64 // barrel angle in radians; 0 points right, π/2 points up
	Power float64
	Color color.RGBA
}

// NewTank places a tank at x on the terrain surface.
func NewTank(x float64, terrain *Terrain, c color.RGBA, facingRight bool) *Tank {
	angle := math.Pi / 4
	if !facingRight {
		angle = 3 * math.Pi / 4
	}
	return &Tank{
		X:     x,
		Y:     terrain.HeightAt(x),
		HP:    config.TankMaxHP,
		Type:  TankStandard,
		Angle: angle,
		Power: (config.MinPower + config.MaxPower) / 2,
		Color: c,
	}
}

// Alive reports whether the tank can still act.
func (t *Tank) Alive() bool {
	return t.HP > 0
}

// Damage applies damage, flooring HP at zero.
func (t *Tank) Damage(amount int) {
	t.HP -= amount
	if t.HP < 0 {
		t.HP = 0
	}
}

// Aim rotates the barrel, clamped to the upper half-plane.
func (t *Tank) Aim(delta float64) {
	t.Angle += delta
	if t.Angle < 0 {
		t.Angle = 0
	}
	if t.Angle > math.Pi {
		t.Angle = math.Pi
	}
}

// AdjustPower changes shot power within [MinPower, MaxPower].
func (t *Tank) AdjustPower(delta float64) {
	t.Power += delta
	if t.Power < config.MinPower {
		t.Power = config.MinPower
	}
	if t.Power > config.MaxPower {
		t.Power = config.MaxPower
	}
}

// BarrelTip is the muzzle position, where shells and muzzle sparks spawn.
// Screen y grows downward, so aiming up subtracts from y.
func (t *Tank) BarrelTip() (float64, float64) {
	return t.X + math.Cos(t.Angle)*config.BarrelLength,
		t.Y - math.Sin(t.Angle)*config.BarrelLength
}

// Draw renders the hull and barrel. Dead tanks are drawn darkened.
func (t *Tank) Draw(screen *ebiten.Image) {
	hull := t.Color
	if !t.Alive() {
		hull = render.DarkenColor(hull)
	}
	tipX, tipY := t.BarrelTip()
	vector.StrokeLine(screen, float32(t.X), float32(t.Y), float32(tipX), float32(tipY), 3, config.BarrelColor, true)
	vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), config.TankRadius, hull, true)
	vector.DrawFilledCircle(screen, float32(t.X), float32(t.Y), config.TankRadius*0.45, render.LightenColor(hull), true)
}
