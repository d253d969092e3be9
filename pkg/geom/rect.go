// pkg/geom/rect.go
package geom

// Rect — осевой прямоугольник (AABB), X/Y — левый верхний угол.
type Rect struct {
	X, Y float64
	W, H float64
}

// FromCenter строит прямоугольник по центру и размерам.
func FromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right возвращает координату правой грани.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom возвращает координату нижней грани.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps — строгое пересечение: касание гранями пересечением не считается.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Body — всё, что участвует в проверке столкновений.
type Body interface {
	Bounds() Rect
	IsVisible() bool
}

// Collide проверяет пересечение двух тел. Невидимые тела (уничтоженные или
// ожидающие удаления) никогда не сталкиваются.
func Collide(a, b Body) bool {
	if !a.IsVisible() || !b.IsVisible() {
		return false
	}
	return a.Bounds().Overlaps(b.Bounds())
}
