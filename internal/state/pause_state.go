// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-artillery/internal/assets"
	"go-artillery/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ State = (*PauseState)(nil)

var pauseOverlayColor = color.RGBA{0, 0, 0, 128}

// PauseState freezes the previous state and dims it under an overlay.
type PauseState struct {
	sm       *StateMachine
	previous State
	face     font.Face
}

func NewPauseState(sm *StateMachine, previous State) *PauseState {
	return &PauseState{
		sm:       sm,
		previous: previous,
		face:     assets.NewFace(36),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	// The frozen frame stays visible behind the overlay.
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, pauseOverlayColor, false)
	drawCentered(screen, "PAUSED", s.face, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
