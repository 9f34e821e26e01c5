// internal/glitch/manager.go
package glitch

import (
	"go-artillery/internal/config"
	"go-artillery/internal/effects"
	"go-artillery/internal/event"
	"go-artillery/internal/utils"
)

// Manager rolls and tracks the per-turn glitch. At most one glitch is
// active at a time; the previous one is reverted before a new roll.
type Manager struct {
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	particles  *effects.ParticleSystem
	active     Effect
}

// NewManager wires the glitch subsystem to its collaborators. particles
// may be nil (no feedback bursts, used by tests).
func NewManager(rng *utils.PRNGService, dispatcher *event.Dispatcher, particles *effects.ParticleSystem) *Manager {
	return &Manager{
		rng:        rng,
		dispatcher: dispatcher,
		particles:  particles,
	}
}

// Roll runs at the start of a turn: it reverts the previous glitch, then
// with config.GlitchChance probability draws uniformly from the effect
// table, applies the pick and announces it with a feedback burst over
// the active tank. Returns the now-active effect, or nil.
func (m *Manager) Roll(t Target) Effect {
	m.revert(t)

	if !m.rng.Chance(config.GlitchChance) {
		return nil
	}

	pick := effectTable[m.rng.Intn(len(effectTable))](m.rng)
	pick.Apply(t)
	m.active = pick
	m.dispatcher.Dispatch(event.Event{Type: event.GlitchTriggered, Data: pick.Name()})
	if m.particles != nil {
		x, y := t.ActiveTankPosition()
		m.particles.Explosion(x, y, config.GlitchBurstCount, config.GlitchColor)
	}
	return pick
}

// Active returns the current glitch, or nil.
func (m *Manager) Active() Effect {
	return m.active
}

// Reset reverts any active glitch, for game restarts.
func (m *Manager) Reset(t Target) {
	m.revert(t)
}

func (m *Manager) revert(t Target) {
	if m.active == nil {
		return
	}
	m.active.Revert(t)
	m.dispatcher.Dispatch(event.Event{Type: event.GlitchReverted, Data: m.active.Name()})
	m.active = nil
}
