// internal/state/menu_state.go
package state

import (
	"image/color"

	"go-artillery/internal/assets"
	"go-artillery/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState is the title screen.
type MenuState struct {
	sm    *StateMachine
	title font.Face
	face  font.Face
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{
		sm:    sm,
		title: assets.NewFace(36),
		face:  assets.NewFace(16),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	drawCentered(screen, "GLITCH ARTILLERY", m.title, config.ScreenHeight/2-40, config.TextLightColor)
	drawCentered(screen, "SPACE to start", m.face, config.ScreenHeight/2+10, config.TextLightColor)
	drawCentered(screen, "arrows aim, hold up/down for power, SPACE fires", m.face, config.ScreenHeight/2+40, config.TextLightColor)
}

func (m *MenuState) Exit() {}

func drawCentered(screen *ebiten.Image, msg string, face font.Face, y int, c color.Color) {
	b := text.BoundString(face, msg)
	text.Draw(screen, msg, face, (config.ScreenWidth-b.Dx())/2, y, c)
}
