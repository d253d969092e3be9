// internal/input/keyboard/keyboard.go
package keyboard

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"hand-invaders/internal/input"
)

// Provider — ввод с клавиатуры: стрелки или A/D рулят, пробел стреляет.
// Опрашивает ebiten, поэтому вызывается только из Update игры.
type Provider struct {
	pressed func(ebiten.Key) bool
}

func NewProvider() *Provider {
	return &Provider{pressed: ebiten.IsKeyPressed}
}

func (p *Provider) Sample(time.Time) input.Sample {
	return Read(p.pressed)
}

// Read строит сэмпл по функции опроса клавиш.
func Read(pressed func(ebiten.Key) bool) input.Sample {
	var s input.Sample
	if pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA) {
		s.Steer--
	}
	if pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD) {
		s.Steer++
	}
	s.TriggerPressed = pressed(ebiten.KeySpace)
	return s
}
