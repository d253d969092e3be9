// internal/input/limiter.go
package input

// FireLimiter пропускает не больше одного залпа за Cooldown секунд.
// Время — симулированное, поэтому пауза не "накапливает" выстрелы.
type FireLimiter struct {
	Cooldown float64
	last     float64
	fired    bool
}

func NewFireLimiter(cooldown float64) *FireLimiter {
	return &FireLimiter{Cooldown: cooldown}
}

// Allow сообщает, можно ли стрелять в момент now, и если да, запоминает выстрел.
func (l *FireLimiter) Allow(now float64) bool {
	if l.fired && now-l.last < l.Cooldown {
		return false
	}
	l.last = now
	l.fired = true
	return true
}
