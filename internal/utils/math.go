// internal/utils/math.go
package utils

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Remap линейно переводит v из [fromLo, fromHi] в [0, 1] с обрезкой по краям.
func Remap(v, fromLo, fromHi float64) float64 {
	if fromHi <= fromLo {
		return 0
	}
	return Clamp((v-fromLo)/(fromHi-fromLo), 0, 1)
}

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
