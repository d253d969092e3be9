// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"hand-invaders/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Face             font.Face
	Color            color.RGBA
	MilestoneColor   color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает индикатор с центром по X и базовой линией Y.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Face:             face,
		Color:            config.TextLightColor,
		MilestoneColor:   config.TextAccentColor,
		OutlineColor:     color.RGBA{0, 0, 0, 255},
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. Каждая пятая волна подсвечивается.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int) {
	label := toRoman(wave)
	if label == "" {
		return
	}
	textColor := i.Color
	if wave%5 == 0 {
		textColor = i.MilestoneColor
	}
	bounds := text.BoundString(i.Face, label)
	DrawOutlined(screen, label, i.Face, i.X-bounds.Dx()/2, i.Y, i.OutlineThickness, textColor, i.OutlineColor)
}
