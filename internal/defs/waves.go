// internal/defs/waves.go
package defs

// FormationSpeed — горизонтальная скорость строя для волны.
func (t *Tuning) FormationSpeed(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return t.Enemies.BaseSpeed + t.Enemies.SpeedIncreasePerWave*float64(wave-1)
}

// ShootingProbability — вероятность выстрела одного врага за срабатывание таймера.
// Растёт с волной и обратно пропорционально числу живых врагов,
// чтобы поредевший строй не становился пассивным.
func (t *Tuning) ShootingProbability(wave, alive int) float64 {
	if alive <= 0 {
		return 0
	}
	if wave < 1 {
		wave = 1
	}
	base := t.Enemies.BaseShootingProb + float64(wave-1)*t.Enemies.ShootingProbIncrease
	return base * float64(t.FormationSize()) / float64(alive)
}
