// internal/game/session.go
package game

import (
	"go-artillery/internal/config"
	"go-artillery/internal/effects"
	"go-artillery/internal/event"
	"go-artillery/internal/glitch"
	"go-artillery/internal/utils"
	"go-artillery/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Session owns one match: terrain, two tanks, the in-flight shell, the
// particle system and the glitch manager. It is constructed explicitly
// and passed by reference to whatever needs it; there is no package
// global. The host loop calls Update(dt) then Draw(screen) per frame.
type Session struct {
	Rng        *utils.PRNGService
	Dispatcher *event.Dispatcher
	Particles  *effects.ParticleSystem
	Glitches   *glitch.Manager

	Terrain    *Terrain
	Tanks      []*Tank
	projectile *Projectile

	active   int
	winner   int // tank index, -1 while playing
	gravity  float64
	wind     float64
	gameTime float64
}

var _ glitch.Target = (*Session)(nil)

// NewSession builds a match with fresh terrain. Seed 0 means
// time-seeded randomness; tests pass a fixed seed.
func NewSession(seed int64) *Session {
	rng := utils.NewPRNGService(seed)
	dispatcher := event.NewDispatcher()
	particles := effects.NewParticleSystem(rng)

	s := &Session{
		Rng:        rng,
		Dispatcher: dispatcher,
		Particles:  particles,
		Glitches:   glitch.NewManager(rng, dispatcher, particles),
		winner:     -1,
		gravity:    config.DefaultGravity,
	}
	s.generate()
	return s
}

// generate lays out terrain, tanks and the opening turn parameters.
func (s *Session) generate() {
	s.Terrain = NewTerrain(config.ScreenWidth, config.ScreenHeight, s.Rng)
	leftX := s.Rng.FloatRange(80, 220)
	rightX := s.Rng.FloatRange(config.ScreenWidth-220, config.ScreenWidth-80)
	s.Tanks = []*Tank{
		NewTank(leftX, s.Terrain, config.TankColors[0], true),
		NewTank(rightX, s.Terrain, config.TankColors[1], false),
	}
	s.projectile = nil
	s.active = 0
	s.rollWind()
}

func (s *Session) rollWind() {
	s.wind = s.Rng.FloatRange(-20, 20)
}

// Update advances the match by dt seconds.
func (s *Session) Update(dt float64) {
	s.gameTime += dt
	s.Particles.Update(dt)

	if s.projectile == nil {
		return
	}
	p := s.projectile
	p.Update(dt, s.gravity, s.wind, s.Particles)

	if hit := s.hitTank(p); hit >= 0 {
		s.resolveImpact(p, hit)
		return
	}
	if s.Terrain.Solid(p.X, p.Y) {
		s.resolveImpact(p, -1)
		return
	}
	if p.OffScreen(config.ScreenWidth, config.ScreenHeight) {
		s.projectile = nil
		s.endTurn()
	}
}

// hitTank returns the index of a tank the shell overlaps, or -1.
// Shells never damage their own tank.
func (s *Session) hitTank(p *Projectile) int {
	for i, t := range s.Tanks {
		if i == p.Owner || !t.Alive() {
			continue
		}
		dx, dy := p.X-t.X, p.Y-t.Y
		r := config.TankRadius + p.Radius
		if dx*dx+dy*dy <= r*r {
			return i
		}
	}
	return -1
}

// resolveImpact applies damage and effects for a shell landing at its
// current position, then ends the turn.
func (s *Session) resolveImpact(p *Projectile, hit int) {
	s.projectile = nil
	stats := s.Tanks[p.Owner].Type.Stats()

	s.Particles.Explosion(p.X, p.Y, config.ImpactBurstCount, config.ParticleWhite)
	s.Particles.Sparks(p.X, p.Y, config.ImpactSparkCount, config.ParticleYellow)

	destroyed := false
	if hit >= 0 {
		t := s.Tanks[hit]
		t.Damage(stats.Damage)
		destroyed = !t.Alive()
	} else {
		// Terrain hit: splash damage to tanks near the crater.
		for i, t := range s.Tanks {
			if i == p.Owner || !t.Alive() {
				continue
			}
			dx, dy := p.X-t.X, p.Y-t.Y
			if dx*dx+dy*dy <= config.SplashRadius*config.SplashRadius {
				t.Damage(config.SplashDamage)
				destroyed = !t.Alive()
				hit = i
			}
		}
	}

	s.Dispatcher.Dispatch(event.Event{Type: event.ProjectileImpact, Data: event.ImpactData{
		X: p.X, Y: p.Y, HitTank: hit, Destroyed: destroyed,
	}})

	if destroyed {
		t := s.Tanks[hit]
		s.Particles.Explosion(t.X, t.Y, config.DestroyedBurstSize, t.Color)
		s.Dispatcher.Dispatch(event.Event{Type: event.TankDestroyed, Data: hit})
		s.winner = p.Owner
	}
	s.endTurn()
}

// endTurn hands control to the other tank and rolls the next glitch.
func (s *Session) endTurn() {
	s.Dispatcher.Dispatch(event.Event{Type: event.TurnEnded, Data: s.active})
	if s.winner >= 0 {
		return
	}
	next := 1 - s.active
	if s.Tanks[next].Alive() {
		s.active = next
	}
	s.rollWind()
	s.Glitches.Roll(s)
}

// Fire launches the active tank's shell. It is a no-op while a shell is
// in flight or after the match has ended.
func (s *Session) Fire() {
	if s.projectile != nil || s.winner >= 0 {
		return
	}
	t := s.Tanks[s.active]
	s.projectile = NewProjectile(s.active, t)
	x, y := t.BarrelTip()
	s.Particles.SparksDefault(x, y)
}

// Aim rotates the active tank's barrel.
func (s *Session) Aim(delta float64) {
	s.Tanks[s.active].Aim(delta)
}

// AdjustPower changes the active tank's shot power.
func (s *Session) AdjustPower(delta float64) {
	s.Tanks[s.active].AdjustPower(delta)
}

// Reset starts a fresh match on new terrain: particles cleared, glitch
// reverted, tanks restored.
func (s *Session) Reset() {
	s.Glitches.Reset(s)
	s.Particles.Clear()
	s.gravity = config.DefaultGravity
	s.winner = -1
	s.gameTime = 0
	s.generate()
	s.Dispatcher.Dispatch(event.Event{Type: event.GameReset})
}

// Draw renders the frame back-to-front: terrain, tanks, shell,
// particles on top.
func (s *Session) Draw(screen *ebiten.Image) {
	s.Terrain.Draw(screen)
	for _, t := range s.Tanks {
		t.Draw(screen)
	}
	if s.projectile != nil {
		s.projectile.Draw(screen)
	}
	s.Particles.Draw(render.NewCanvas(screen))
}

// ActiveTank returns the tank whose turn it is.
func (s *Session) ActiveTank() *Tank { return s.Tanks[s.active] }

// ActiveIndex returns the index of the tank whose turn it is.
func (s *Session) ActiveIndex() int { return s.active }

// InFlight reports whether a shell is currently flying.
func (s *Session) InFlight() bool { return s.projectile != nil }

// Winner returns the winning tank index, or -1 while playing.
func (s *Session) Winner() int { return s.winner }

// Wind returns the current horizontal wind acceleration.
func (s *Session) Wind() float64 { return s.wind }

// Time returns seconds of match time, for HUD animation.
func (s *Session) Time() float64 { return s.gameTime }

// glitch.Target implementation. Glitches see only this narrow surface.

func (s *Session) Gravity() float64         { return s.gravity }
func (s *Session) SetGravity(g float64)     { s.gravity = g }
func (s *Session) ActiveTankType() int      { return int(s.Tanks[s.active].Type) }
func (s *Session) SetActiveTankType(tt int) { s.Tanks[s.active].Type = TankType(tt) }
func (s *Session) TankTypeCount() int       { return int(tankTypeCount) }
func (s *Session) ActiveTankHP() int        { return s.Tanks[s.active].HP }
func (s *Session) SetActiveTankHP(hp int)   { s.Tanks[s.active].HP = hp }
func (s *Session) TankMaxHP() int           { return config.TankMaxHP }
func (s *Session) ActiveTankPosition() (float64, float64) {
	t := s.Tanks[s.active]
	return t.X, t.Y
}
