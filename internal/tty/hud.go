// internal/tty/hud.go
package tty

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"hand-invaders/internal/app"
)

var hudStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// DrawText пишет строку начиная с (x, y), обрезая по краю экрана.
func DrawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// StatusLine — строка состояния внизу терминала.
func StatusLine(s app.Snapshot, paused bool) string {
	line := fmt.Sprintf("SCORE %06d  WAVE %d  x%d DMG %d", s.Score, s.Wave, s.BulletCount, s.BulletDamage)
	if paused {
		line += "  [PAUSED]"
	}
	return line
}

// DrawHUD рисует строку состояния в последней строке экрана
// и баннер посередине, пока партия на паузе.
func DrawHUD(screen tcell.Screen, s app.Snapshot, paused bool) {
	_, h := screen.Size()
	DrawText(screen, 0, h-1, hudStyle, StatusLine(s, paused))
	if paused {
		DrawCentered(screen, h/2, hudStyle, "PAUSED - p to resume, q to quit")
	}
}

// DrawCentered пишет строку по центру строки y.
func DrawCentered(screen tcell.Screen, y int, style tcell.Style, s string) {
	w, _ := screen.Size()
	DrawText(screen, (w-len([]rune(s)))/2, y, style, s)
}
