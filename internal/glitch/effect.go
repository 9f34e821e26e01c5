// internal/glitch/effect.go
package glitch

import (
	"go-artillery/internal/config"
	"go-artillery/internal/utils"
)

// Target is the slice of game state a glitch is allowed to mutate.
// The game session implements it; tests use a fake.
type Target interface {
	Gravity() float64
	SetGravity(float64)
	ActiveTankType() int
	SetActiveTankType(int)
	TankTypeCount() int
	ActiveTankHP() int
	SetActiveTankHP(int)
	TankMaxHP() int
	ActiveTankPosition() (x, y float64)
}

// Effect is one entry of the glitch table. Apply runs when the glitch
// triggers at the start of a turn; Revert runs when the next turn begins
// (or the game resets). Instances are single-use: each activation gets a
// fresh one so captured prior values cannot leak between turns.
type Effect interface {
	ID() string
	Name() string
	Apply(t Target)
	Revert(t Target)
}

// effectTable lists the five glitch effects. Selection is uniform.
var effectTable = [...]func(rng *utils.PRNGService) Effect{
	newMoonGravity,
	newHeavyShells,
	newTankRoulette,
	newEmergencyRepair,
	newSystemDrain,
}

// moonGravity scales projectile gravity down for one turn.
type moonGravity struct {
	prev float64
}

func newMoonGravity(_ *utils.PRNGService) Effect { return &moonGravity{} }

func (g *moonGravity) ID() string   { return "moon_gravity" }
func (g *moonGravity) Name() string { return "MOON GRAVITY" }

func (g *moonGravity) Apply(t Target) {
	g.prev = t.Gravity()
	t.SetGravity(g.prev * config.GlitchMoonFactor)
}

func (g *moonGravity) Revert(t Target) {
	t.SetGravity(g.prev)
}

// heavyShells doubles projectile gravity for one turn.
type heavyShells struct {
	prev float64
}

func newHeavyShells(_ *utils.PRNGService) Effect { return &heavyShells{} }

func (g *heavyShells) ID() string   { return "heavy_shells" }
func (g *heavyShells) Name() string { return "HEAVY SHELLS" }

func (g *heavyShells) Apply(t Target) {
	g.prev = t.Gravity()
	t.SetGravity(g.prev * config.GlitchHeavyFactor)
}

func (g *heavyShells) Revert(t Target) {
	t.SetGravity(g.prev)
}

// tankRoulette re-rolls the active tank's type for one turn.
type tankRoulette struct {
	rng  *utils.PRNGService
	prev int
}

func newTankRoulette(rng *utils.PRNGService) Effect { return &tankRoulette{rng: rng} }

func (g *tankRoulette) ID() string   { return "tank_roulette" }
func (g *tankRoulette) Name() string { return "TANK ROULETTE" }

func (g *tankRoulette) Apply(t Target) {
	g.prev = t.ActiveTankType()
	t.SetActiveTankType(g.rng.Intn(t.TankTypeCount()))
}

func (g *tankRoulette) Revert(t Target) {
	t.SetActiveTankType(g.prev)
}

// emergencyRepair grants the active tank HP, clamped to max. The heal
// is a permanent gameplay outcome: Revert does not take it back.
type emergencyRepair struct{}

func newEmergencyRepair(_ *utils.PRNGService) Effect { return emergencyRepair{} }

func (emergencyRepair) ID() string   { return "emergency_repair" }
func (emergencyRepair) Name() string { return "EMERGENCY REPAIR" }

func (emergencyRepair) Apply(t Target) {
	hp := t.ActiveTankHP() + config.GlitchRepairHP
	if hp > t.TankMaxHP() {
		hp = t.TankMaxHP()
	}
	t.SetActiveTankHP(hp)
}

func (emergencyRepair) Revert(t Target) {}

// systemDrain saps the active tank's HP, never below 1. Like the
// repair, the drain sticks.
type systemDrain struct{}

func newSystemDrain(_ *utils.PRNGService) Effect { return systemDrain{} }

func (systemDrain) ID() string   { return "system_drain" }
func (systemDrain) Name() string { return "SYSTEM DRAIN" }

func (systemDrain) Apply(t Target) {
	hp := t.ActiveTankHP() - config.GlitchDrainHP
	if hp < 1 {
		hp = 1
	}
	t.SetActiveTankHP(hp)
}

func (systemDrain) Revert(t Target) {}
