// internal/effects/system.go
package effects

import (
	"image/color"
	"math"

	"go-artillery/internal/config"
	"go-artillery/internal/utils"
)

// ParticleSystem owns the set of live particles for one game session.
// Order within the slice only affects visual overlap. The host calls
// Update(dt) then Draw(surface) once per frame; gameplay code injects
// particles through the spawn helpers.
type ParticleSystem struct {
	particles []*Particle
	rng       *utils.PRNGService
}

// NewParticleSystem creates an empty system drawing randomness from rng.
func NewParticleSystem(rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{rng: rng}
}

// Spawn adds a single particle at (x, y). Options left nil in cfg are
// rolled from the default distributions; no validation is applied.
func (ps *ParticleSystem) Spawn(x, y float64, cfg SpawnConfig) {
	ps.particles = append(ps.particles, NewParticle(x, y, cfg, ps.rng))
}

// Burst spawns count particles with the same config template. Random
// defaults are re-rolled per particle, so a burst fans out on its own.
func (ps *ParticleSystem) Burst(x, y float64, count int, cfg SpawnConfig) {
	for i := 0; i < count; i++ {
		ps.Spawn(x, y, cfg)
	}
}

// Explosion is the impact preset: fast, chunky, heavy particles.
// Speed, radius and life are rolled per particle so the burst fans out.
func (ps *ParticleSystem) Explosion(x, y float64, count int, c color.Color) {
	for i := 0; i < count; i++ {
		ps.Spawn(x, y, SpawnConfig{
			Speed:    Float(ps.rng.FloatRange(3, 12)),
			Radius:   Float(ps.rng.FloatRange(2, 6)),
			Life:     Float(ps.rng.FloatRange(0.3, 1.0)),
			Gravity:  Float(0.15),
			Friction: Float(0.96),
			Color:    c,
		})
	}
}

// ExplosionDefault spawns the standard 50-particle white explosion.
func (ps *ParticleSystem) ExplosionDefault(x, y float64) {
	ps.Explosion(x, y, 50, config.ParticleWhite)
}

// Sparks is the small-impact preset: quick, tiny, short-lived.
func (ps *ParticleSystem) Sparks(x, y float64, count int, c color.Color) {
	for i := 0; i < count; i++ {
		ps.Spawn(x, y, SpawnConfig{
			Speed:    Float(ps.rng.FloatRange(2, 6)),
			Radius:   Float(ps.rng.FloatRange(1, 3)),
			Life:     Float(ps.rng.FloatRange(0.2, 0.5)),
			Gravity:  Float(0.05),
			Friction: Float(0.95),
			Color:    c,
		})
	}
}

// SparksDefault spawns the standard 10-particle yellow spark burst.
func (ps *ParticleSystem) SparksDefault(x, y float64) {
	ps.Sparks(x, y, 10, config.ParticleYellow)
}

// Trail drops one slow, downward-biased particle behind a projectile.
func (ps *ParticleSystem) Trail(x, y float64, c color.Color) {
	ps.Spawn(x, y, SpawnConfig{
		Angle:    Float(math.Pi/2 + ps.rng.FloatRange(-0.3, 0.3)),
		Speed:    Float(ps.rng.FloatRange(0.5, 1.5)),
		Radius:   Float(ps.rng.FloatRange(2, 4)),
		Life:     Float(ps.rng.FloatRange(0.2, 0.4)),
		Gravity:  Float(0),
		Friction: Float(0.9),
		Color:    c,
	})
}

// TrailDefault drops a cyan trail particle.
func (ps *ParticleSystem) TrailDefault(x, y float64) {
	ps.Trail(x, y, config.ParticleCyan)
}

// Update steps every particle and then filters out the dead ones.
// A full pass per frame is fine: the population is small and decays.
func (ps *ParticleSystem) Update(dt float64) {
	for _, p := range ps.particles {
		p.Update(dt)
	}
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		if !p.Dead {
			alive = append(alive, p)
		}
	}
	// Release trailing slots so dead particles are not retained.
	for i := len(alive); i < len(ps.particles); i++ {
		ps.particles[i] = nil
	}
	ps.particles = alive
}

// Draw renders every live particle in collection order.
func (ps *ParticleSystem) Draw(surface Surface) {
	for _, p := range ps.particles {
		p.Draw(surface)
	}
}

// Clear drops all particles immediately (game reset).
func (ps *ParticleSystem) Clear() {
	for i := range ps.particles {
		ps.particles[i] = nil
	}
	ps.particles = ps.particles[:0]
}

// Count reports the number of live particles, for diagnostics.
func (ps *ParticleSystem) Count() int {
	return len(ps.particles)
}

// Particles exposes the live slice for inspection. Callers must not
// mutate it; it is reused across frames.
func (ps *ParticleSystem) Particles() []*Particle {
	return ps.particles
}
