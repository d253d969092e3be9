// pkg/render/color.go
package render

import "image/color"

// Palette — цвета визуалов по видам. Variants перекрывает цвет KindEnemy.
type Palette struct {
	Background color.RGBA
	Kinds      map[Kind]color.RGBA
	Variants   map[string]color.RGBA
}

// ColorOf возвращает цвет визуала с учётом прозрачности.
func (p Palette) ColorOf(v Visual) color.RGBA {
	c, ok := p.Variants[v.Variant]
	if !ok || v.Variant == "" {
		c, ok = p.Kinds[v.Kind]
		if !ok {
			c = color.RGBA{255, 255, 255, 255}
		}
	}
	if v.Alpha > 0 && v.Alpha < 1 {
		c = Fade(c, v.Alpha)
	}
	return c
}

// Fade умножает цвет на alpha (ebiten ждёт premultiplied RGBA).
func Fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
