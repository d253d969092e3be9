// internal/config/config.go
package config

import (
	"image/color"
	"time"

	"hand-invaders/pkg/render"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Hand Invaders"

	MaxDeltaTime  = 0.1 // секунды, больше за один кадр не симулируем
	FrameInterval = time.Second / 60

	// Терминальный фронтенд: сколько мировых единиц приходится на одну клетку.
	CellWidth  = 10.0
	CellHeight = 20.0

	// Вход по жестам: сигнал старше этого считается отсутствием намерения.
	InputStaleAfter = 500 * time.Millisecond

	GestureSenseMin      = 0.2
	GestureSenseMax      = 0.8
	PinchThreshold       = 0.1
	DefaultBridgeAddress = "localhost:8765"

	LeaderboardSize   = 10
	MaxPlayerNameLen  = 15
	LeaderboardFile   = "leaderboard.msgpack"
	HUDFontSize       = 16
	HUDMarginX        = 10
	HUDMarginY        = 20
	WaveIndicatorSize = 24

	SampleRate = 44100
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextAccentColor   = color.RGBA{255, 215, 0, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	PlayerColor       = color.RGBA{0, 255, 0, 255}
	PlayerBulletColor = color.RGBA{0, 255, 0, 255}
	EnemyBulletColor  = color.RGBA{255, 0, 0, 255}
	BarrierColor      = color.RGBA{0, 255, 0, 255}
	EnemyColors       = map[string]color.RGBA{
		"normal": {255, 255, 255, 255},
		"sniper": {255, 80, 80, 255},  // красный: два попадания
		"gunner": {80, 160, 255, 255}, // синий: даёт дополнительную пулю
	}
)

// Palette собирает палитру визуалов для фронтендов.
func Palette() render.Palette {
	return render.Palette{
		Background: BackgroundColor,
		Kinds: map[render.Kind]color.RGBA{
			render.KindPlayer:       PlayerColor,
			render.KindPlayerBullet: PlayerBulletColor,
			render.KindEnemyBullet:  EnemyBulletColor,
			render.KindSegment:      BarrierColor,
			render.KindEnemy:        EnemyColors["normal"],
		},
		Variants: EnemyColors,
	}
}
