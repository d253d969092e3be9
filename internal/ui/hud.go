// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"hand-invaders/internal/app"
	"hand-invaders/internal/config"
)

// HUD — счёт, волна и улучшения игрока поверх поля.
type HUD struct {
	face font.Face
	wave *WaveIndicator
}

func NewHUD(face, waveFace font.Face) *HUD {
	return &HUD{
		face: face,
		wave: NewWaveIndicator(config.ScreenWidth/2, config.HUDMarginY+8, waveFace),
	}
}

// ScoreLine — строка счёта в левом углу.
func ScoreLine(s app.Snapshot) string {
	return fmt.Sprintf("SCORE %06d", s.Score)
}

// UpgradeLine — строка с улучшениями в правом углу.
func UpgradeLine(s app.Snapshot) string {
	return fmt.Sprintf("x%d  DMG %d", s.BulletCount, s.BulletDamage)
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	text.Draw(screen, ScoreLine(s), h.face, config.HUDMarginX, config.HUDMarginY, config.TextLightColor)

	upgrades := UpgradeLine(s)
	bounds := text.BoundString(h.face, upgrades)
	text.Draw(screen, upgrades, h.face, config.ScreenWidth-config.HUDMarginX-bounds.Dx(), config.HUDMarginY, config.TextLightColor)

	h.wave.Draw(screen, s.Wave)
}
