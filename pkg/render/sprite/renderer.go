// pkg/render/sprite/renderer.go
package sprite

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"hand-invaders/pkg/render"
)

// Renderer рисует визуалы залитыми прямоугольниками в окне ebiten.
type Renderer struct {
	*render.Store
	palette render.Palette
}

func NewRenderer(palette render.Palette) *Renderer {
	return &Renderer{Store: render.NewStore(), palette: palette}
}

// Draw рисует все видимые визуалы. Фон не очищается.
func (r *Renderer) Draw(screen *ebiten.Image) {
	for _, it := range r.Items() {
		b := it.Bounds
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), r.palette.ColorOf(it.Visual), false)
	}
}
