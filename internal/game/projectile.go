// internal/game/projectile.go
package game

import (
	"math"

	"go-artillery/internal/config"
	"go-artillery/internal/effects"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Projectile is the in-flight shell. Unlike particles, shell physics is
// integrated against wall-clock dt so shots feel the same at any frame
// rate.
type Projectile struct {
	X, Y       float64
	VX, VY     float64
	Radius     float64
	Owner      int // index of the firing tank
	trailTimer float64
}

// NewProjectile launches a shell from the owner tank's muzzle.
func NewProjectile(owner int, t *Tank) *Projectile {
	x, y := t.BarrelTip()
	return &Projectile{
		X:      x,
		Y:      y,
		VX:     math.Cos(t.Angle) * t.Power,
		VY:     -math.Sin(t.Angle) * t.Power,
		Radius: t.Type.Stats().ShellRadius,
		Owner:  owner,
	}
}

// Update integrates one step under the session's gravity and wind, and
// drips trail particles at a fixed cadence.
func (p *Projectile) Update(dt, gravity, wind float64, particles *effects.ParticleSystem) {
	p.VY += gravity * dt
	p.VX += wind * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt

	p.trailTimer += dt
	for p.trailTimer >= config.TrailInterval {
		p.trailTimer -= config.TrailInterval
		particles.TrailDefault(p.X, p.Y)
	}
}

// OffScreen reports whether the shell left the playfield sideways or
// fell past the bottom. Shells above the top are still in play.
func (p *Projectile) OffScreen(width, height int) bool {
	return p.X < -50 || p.X > float64(width)+50 || p.Y > float64(height)+50
}

// Draw renders the shell.
func (p *Projectile) Draw(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), config.ProjectileColor, true)
}
