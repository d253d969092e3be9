// pkg/render/cell/renderer.go
package cell

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"hand-invaders/pkg/geom"
	"hand-invaders/pkg/render"
)

// Renderer рисует визуалы символами в терминале.
// Каждая клетка покрывает CellWidth x CellHeight мировых единиц.
type Renderer struct {
	*render.Store
	palette    render.Palette
	cellWidth  float64
	cellHeight float64
}

func NewRenderer(palette render.Palette, cellWidth, cellHeight float64) *Renderer {
	return &Renderer{
		Store:      render.NewStore(),
		palette:    palette,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// Glyph — символ для визуала.
func Glyph(v render.Visual) rune {
	switch v.Kind {
	case render.KindPlayer:
		return 'A'
	case render.KindPlayerBullet:
		return '|'
	case render.KindEnemyBullet:
		return '!'
	case render.KindSegment:
		return '#'
	case render.KindEnemy:
		switch v.Variant {
		case "sniper":
			return 'M'
		case "gunner":
			return 'Y'
		}
		return 'W'
	}
	return '?'
}

// Cells переводит прямоугольник в диапазон клеток [x0, x1] x [y0, y1].
// Даже крошечный объект занимает хотя бы одну клетку.
func (r *Renderer) Cells(b geom.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.X / r.cellWidth))
	y0 = int(math.Floor(b.Y / r.cellHeight))
	x1 = max(x0, int(math.Ceil(b.Right()/r.cellWidth))-1)
	y1 = max(y0, int(math.Ceil(b.Bottom()/r.cellHeight))-1)
	return x0, y0, x1, y1
}

// Draw выводит визуалы на экран. Экран не очищается и Show не вызывается.
func (r *Renderer) Draw(screen tcell.Screen) {
	w, h := screen.Size()
	for _, it := range r.Items() {
		c := r.palette.ColorOf(it.Visual)
		style := tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
			Background(tcell.ColorBlack)
		glyph := Glyph(it.Visual)

		x0, y0, x1, y1 := r.Cells(it.Bounds)
		for y := max(y0, 0); y <= min(y1, h-1); y++ {
			for x := max(x0, 0); x <= min(x1, w-1); x++ {
				screen.SetContent(x, y, glyph, nil, style)
			}
		}
	}
}
