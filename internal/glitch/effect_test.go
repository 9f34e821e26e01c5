package glitch

import (
	"testing"

	"go-artillery/internal/config"
	"go-artillery/internal/utils"
)

// fakeTarget records mutations for effect assertions.
type fakeTarget struct {
	gravity   float64
	tankType  int
	typeCount int
	hp        int
	maxHP     int
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		gravity:   config.DefaultGravity,
		tankType:  1,
		typeCount: 3,
		hp:        60,
		maxHP:     config.TankMaxHP,
	}
}

func (f *fakeTarget) Gravity() float64                      { return f.gravity }
func (f *fakeTarget) SetGravity(g float64)                  { f.gravity = g }
func (f *fakeTarget) ActiveTankType() int                   { return f.tankType }
func (f *fakeTarget) SetActiveTankType(t int)               { f.tankType = t }
func (f *fakeTarget) TankTypeCount() int                    { return f.typeCount }
func (f *fakeTarget) ActiveTankHP() int                     { return f.hp }
func (f *fakeTarget) SetActiveTankHP(hp int)                { f.hp = hp }
func (f *fakeTarget) TankMaxHP() int                        { return f.maxHP }
func (f *fakeTarget) ActiveTankPosition() (float64, float64) { return 100, 200 }

func TestEffectTableHasFiveEntries(t *testing.T) {
	if len(effectTable) != 5 {
		t.Fatalf("effect table has %d entries, want 5", len(effectTable))
	}
	rng := utils.NewPRNGService(1)
	seen := make(map[string]bool)
	for _, factory := range effectTable {
		e := factory(rng)
		if e.ID() == "" || e.Name() == "" {
			t.Errorf("effect %T has empty ID or Name", e)
		}
		if seen[e.ID()] {
			t.Errorf("duplicate effect ID %q", e.ID())
		}
		seen[e.ID()] = true
	}
}

func TestGravityEffectsApplyAndRevert(t *testing.T) {
	tests := []struct {
		name    string
		factory func(*utils.PRNGService) Effect
		factor  float64
	}{
		{"Moon gravity", newMoonGravity, config.GlitchMoonFactor},
		{"Heavy shells", newHeavyShells, config.GlitchHeavyFactor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newFakeTarget()
			base := target.gravity
			e := tt.factory(nil)

			e.Apply(target)
			if target.gravity != base*tt.factor {
				t.Errorf("gravity after apply = %v, want %v", target.gravity, base*tt.factor)
			}
			e.Revert(target)
			if target.gravity != base {
				t.Errorf("gravity after revert = %v, want %v", target.gravity, base)
			}
		})
	}
}

func TestTankRoulette(t *testing.T) {
	rng := utils.NewPRNGService(11)
	target := newFakeTarget()
	e := newTankRoulette(rng)

	e.Apply(target)
	if target.tankType < 0 || target.tankType >= target.typeCount {
		t.Errorf("rolled type %d outside [0, %d)", target.tankType, target.typeCount)
	}
	e.Revert(target)
	if target.tankType != 1 {
		t.Errorf("type after revert = %d, want 1", target.tankType)
	}
}

func TestEmergencyRepairClampsToMax(t *testing.T) {
	target := newFakeTarget()
	target.hp = target.maxHP - 5
	e := newEmergencyRepair(nil)

	e.Apply(target)
	if target.hp != target.maxHP {
		t.Errorf("hp = %d, want clamped %d", target.hp, target.maxHP)
	}
	// The heal is permanent gameplay state.
	e.Revert(target)
	if target.hp != target.maxHP {
		t.Errorf("revert changed hp to %d; repairs must stick", target.hp)
	}
}

func TestSystemDrainFloorsAtOne(t *testing.T) {
	target := newFakeTarget()
	target.hp = 5
	e := newSystemDrain(nil)

	e.Apply(target)
	if target.hp != 1 {
		t.Errorf("hp = %d, want floor of 1", target.hp)
	}
	e.Revert(target)
	if target.hp != 1 {
		t.Errorf("revert changed hp to %d; drains must stick", target.hp)
	}
}
