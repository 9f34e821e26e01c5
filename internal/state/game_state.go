// internal/state/game_state.go
package state

import (
	"go-artillery/internal/assets"
	"go-artillery/internal/config"
	"go-artillery/internal/game"
	"go-artillery/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState runs a match: it owns the session and translates input into
// session calls.
type GameState struct {
	sm      *StateMachine
	session *game.Session
	hud     *ui.HUD
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{
		sm:      sm,
		session: game.NewSession(0),
		hud:     ui.NewHUD(assets.NewFace(16), assets.NewFace(28)),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}

	// Aiming and power are held keys; firing is edge-triggered.
	if g.session.Winner() < 0 && !g.session.InFlight() {
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			g.session.Aim(config.AimSpeed * deltaTime)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			g.session.Aim(-config.AimSpeed * deltaTime)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			g.session.AdjustPower(config.PowerSpeed * deltaTime)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			g.session.AdjustPower(-config.PowerSpeed * deltaTime)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.session.Fire()
		}
	}

	g.session.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.session.Draw(screen)
	g.hud.Draw(screen, g.session)
}

func (g *GameState) Exit() {}
