// internal/ui/hud.go
package ui

import (
	"fmt"
	"math"

	"go-artillery/internal/config"
	"go-artillery/internal/game"
	"go-artillery/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUD draws the match overlay: HP bars, aim readout, glitch banner and
// the diagnostics line.
type HUD struct {
	face   font.Face
	banner font.Face
}

func NewHUD(face, banner font.Face) *HUD {
	return &HUD{face: face, banner: banner}
}

// Draw renders the full overlay for the current frame.
func (h *HUD) Draw(screen *ebiten.Image, s *game.Session) {
	h.drawTankPanel(screen, s, 0, config.HUDMargin)
	h.drawTankPanel(screen, s, 1, config.ScreenWidth-config.HUDMargin-HPBarWidth())
	h.drawAimReadout(screen, s)
	h.drawGlitchBanner(screen, s)
	h.drawWinner(screen, s)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("particles: %d", s.Particles.Count()),
		config.HUDMargin, config.ScreenHeight-20)
}

// HPBarWidth is exported for panel layout math.
func HPBarWidth() int { return int(config.HPBarWidth) }

func (h *HUD) drawTankPanel(screen *ebiten.Image, s *game.Session, idx, x int) {
	t := s.Tanks[idx]
	y := float32(config.HUDMargin)

	vector.DrawFilledRect(screen, float32(x), y, float32(config.HPBarWidth), float32(config.HPBarHeight), config.HPBarBackColor, false)
	frac := float32(t.HP) / float32(config.TankMaxHP)
	fill := config.HPBarFillColor
	if t.HP <= config.TankMaxHP/4 {
		fill = config.HPBarLowColor
	}
	vector.DrawFilledRect(screen, float32(x), y, float32(config.HPBarWidth)*frac, float32(config.HPBarHeight), fill, false)

	label := fmt.Sprintf("P%d  %s  %d", idx+1, t.Type, t.HP)
	if idx == s.ActiveIndex() && s.Winner() < 0 {
		label = "> " + label
	}
	text.Draw(screen, label, h.face, x, config.HUDMargin+28, config.TextLightColor)
}

func (h *HUD) drawAimReadout(screen *ebiten.Image, s *game.Session) {
	t := s.ActiveTank()
	readout := fmt.Sprintf("angle %3.0f°   power %3.0f   wind %+.0f",
		t.Angle*180/math.Pi, t.Power, s.Wind())
	b := text.BoundString(h.face, readout)
	text.Draw(screen, readout, h.face, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight-24, config.TextLightColor)
}

func (h *HUD) drawGlitchBanner(screen *ebiten.Image, s *game.Session) {
	effect := s.Glitches.Active()
	if effect == nil {
		return
	}
	// Slow pulse so the banner reads as an anomaly, not a static label.
	pulse := 0.7 + 0.3*math.Sin(s.Time()*6)
	msg := "!! " + effect.Name() + " !!"
	b := text.BoundString(h.banner, msg)
	text.Draw(screen, msg, h.banner,
		(config.ScreenWidth-b.Dx())/2, config.BannerOffsetY+40,
		render.ScaleAlpha(config.GlitchColor, pulse))
}

func (h *HUD) drawWinner(screen *ebiten.Image, s *game.Session) {
	if s.Winner() < 0 {
		return
	}
	msg := fmt.Sprintf("PLAYER %d WINS (R to restart)", s.Winner()+1)
	b := text.BoundString(h.banner, msg)
	text.Draw(screen, msg, h.banner,
		(config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}
