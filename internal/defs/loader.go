// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ErrInvalidTuning возвращается, когда файл настроек описывает неиграбельную партию.
var ErrInvalidTuning = errors.New("invalid tuning")

// LoadTuning reads a JSON tuning file and overlays it on top of Default().
// Fields missing from the file keep their default values.
func LoadTuning(path string) (*Tuning, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	t, err := ParseTuning(file)
	if err != nil {
		return nil, err
	}

	slog.Info("loaded tuning", "path", path, "enemy_kinds", len(t.Enemies.Kinds))
	return t, nil
}

// ParseTuning разбирает JSON поверх настроек по умолчанию и проверяет результат.
func ParseTuning(data []byte) (*Tuning, error) {
	t := Default()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate проверяет, что из настроек можно построить партию.
func (t *Tuning) Validate() error {
	switch {
	case t.Width <= 0 || t.Height <= 0:
		return fmt.Errorf("%w: play area %vx%v", ErrInvalidTuning, t.Width, t.Height)
	case t.MaxDeltaTime <= 0:
		return fmt.Errorf("%w: max_delta_time must be positive", ErrInvalidTuning)
	case t.Enemies.Rows < 1 || t.Enemies.Columns < 1:
		return fmt.Errorf("%w: formation %dx%d", ErrInvalidTuning, t.Enemies.Rows, t.Enemies.Columns)
	case t.Enemies.ShootingIntervalMs <= 0:
		return fmt.Errorf("%w: shooting_interval_ms must be positive", ErrInvalidTuning)
	case t.Player.MaxBulletCount < 1:
		return fmt.Errorf("%w: max_bullet_count must be at least 1", ErrInvalidTuning)
	case t.Barriers.Count < 0 || t.Barriers.Rows < 0 || t.Barriers.Cols < 0:
		return fmt.Errorf("%w: negative barrier grid", ErrInvalidTuning)
	}

	var total float64
	for _, def := range t.Enemies.Kinds {
		if def.SpawnRate < 0 {
			return fmt.Errorf("%w: negative spawn rate for %q", ErrInvalidTuning, def.Kind)
		}
		total += def.SpawnRate
	}
	if total > 1 {
		return fmt.Errorf("%w: spawn rates sum to %.3f", ErrInvalidTuning, total)
	}
	return nil
}
