// internal/component/movement.go
package component

// Vector2D — позиция или скорость в мировых единицах (ед. и ед./с).
type Vector2D struct {
	X, Y float64
}

// Formation — общая горизонтальная скорость строя врагов.
// Все враги ссылаются на одно значение, поэтому разворот строя — одна запись.
type Formation struct {
	VelocityX float64
}

// Flip разворачивает строй.
func (f *Formation) Flip() {
	f.VelocityX = -f.VelocityX
}
