// internal/effects/particle.go
package effects

import (
	"image/color"
	"math"

	"go-artillery/internal/config"
	"go-artillery/internal/utils"
)

// Surface is the drawing target for particles. Alpha is passed per call
// instead of toggling shared context state, so an interrupted draw can
// never leak a modified global opacity.
type Surface interface {
	FillCircle(x, y, radius float64, c color.Color, alpha float64)
}

// SpawnConfig describes one particle. Nil fields are rolled from the
// default distributions at construction time; a field set to an explicit
// value, including zero, is used as-is.
type SpawnConfig struct {
	Angle    *float64 // radians
	Speed    *float64
	Color    color.Color
	Radius   *float64
	Life     *float64 // seconds
	Gravity  *float64
	Friction *float64
	Shrink   *bool
}

// Float returns a pointer to v, for filling SpawnConfig fields inline.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for filling SpawnConfig fields inline.
func Bool(v bool) *bool { return &v }

// Particle is a single decaying visual point. Velocities are in pixels
// per frame, not per second: gravity and friction are applied once per
// Update without dt scaling, matching the original frame-tied tuning.
// Only Life counts down in wall-clock seconds.
type Particle struct {
	X, Y           float64
	VX, VY         float64
	Color          color.Color
	Radius         float64
	OriginalRadius float64
	Life           float64
	MaxLife        float64
	Gravity        float64
	Friction       float64
	Shrink         bool
	Dead           bool
}

// NewParticle builds a particle at (x, y), rolling defaults for any
// config field left nil.
func NewParticle(x, y float64, cfg SpawnConfig, rng *utils.PRNGService) *Particle {
	angle := rng.Angle()
	if cfg.Angle != nil {
		angle = *cfg.Angle
	}
	speed := rng.FloatRange(2, 8)
	if cfg.Speed != nil {
		speed = *cfg.Speed
	}
	radius := rng.FloatRange(2, 5)
	if cfg.Radius != nil {
		radius = *cfg.Radius
	}
	life := rng.FloatRange(0.5, 1.5)
	if cfg.Life != nil {
		life = *cfg.Life
	}
	gravity := 0.1
	if cfg.Gravity != nil {
		gravity = *cfg.Gravity
	}
	friction := 0.98
	if cfg.Friction != nil {
		friction = *cfg.Friction
	}
	shrink := true
	if cfg.Shrink != nil {
		shrink = *cfg.Shrink
	}
	var c color.Color = config.ParticleWhite
	if cfg.Color != nil {
		c = cfg.Color
	}

	return &Particle{
		X:              x,
		Y:              y,
		VX:             math.Cos(angle) * speed,
		VY:             math.Sin(angle) * speed,
		Color:          c,
		Radius:         radius,
		OriginalRadius: radius,
		Life:           life,
		MaxLife:        life,
		Gravity:        gravity,
		Friction:       friction,
		Shrink:         shrink,
	}
}

// Update advances the particle by one frame. dt affects only the life
// countdown; motion is per-frame (see the type comment).
func (p *Particle) Update(dt float64) {
	p.VY += p.Gravity
	p.VX *= p.Friction
	p.VY *= p.Friction
	p.X += p.VX
	p.Y += p.VY
	p.Life -= dt
	if p.Shrink {
		p.Radius = p.OriginalRadius * (p.Life / p.MaxLife)
	}
	if p.Life <= 0 || p.Radius <= 0 {
		p.Dead = true
	}
}

// Draw renders the particle faded by its remaining life fraction.
// It never mutates physics state.
func (p *Particle) Draw(surface Surface) {
	alpha := p.Life / p.MaxLife
	if alpha < 0 {
		alpha = 0
	}
	radius := p.Radius
	if radius < 0.5 {
		radius = 0.5
	}
	surface.FillCircle(p.X, p.Y, radius, p.Color, alpha)
}
