// internal/input/gesture.go
package input

import (
	"math"

	"hand-invaders/internal/utils"
)

// Landmark — точка ладони в нормализованных координатах камеры.
type Landmark struct {
	X, Y, Z float64
}

// Индексы кончиков большого и указательного пальцев в модели ладони из 21 точки.
const (
	thumbTip = 4
	indexTip = 8
)

// GestureMapper переводит сырые данные трекера в Sample.
// Трекер уверенно видит руку только в середине кадра, поэтому полоса
// [SenseMin, SenseMax] растягивается на всё поле.
type GestureMapper struct {
	SenseMin       float64
	SenseMax       float64
	PinchThreshold float64
}

// NewGestureMapper возвращает маппер со стандартной полосой 0.2..0.8 и порогом щипка 0.1.
func NewGestureMapper() GestureMapper {
	return GestureMapper{SenseMin: 0.2, SenseMax: 0.8, PinchThreshold: 0.1}
}

// Map строит сэмпл из средней координаты ладони и признака щипка.
// NaN в координате означает, что положение неизвестно.
func (m GestureMapper) Map(rawX float64, pinching bool) Sample {
	if math.IsNaN(rawX) || math.IsInf(rawX, 0) {
		return Sample{TriggerPressed: pinching}
	}
	return Sample{
		HorizontalFraction: utils.Remap(rawX, m.SenseMin, m.SenseMax),
		Absolute:           true,
		TriggerPressed:     pinching,
	}
}

// IsPinch сообщает, достаточно ли сведены пальцы.
func (m GestureMapper) IsPinch(distance float64) bool {
	return distance >= 0 && distance < m.PinchThreshold
}

// MapLandmarks считает среднюю координату и расстояние между кончиками пальцев.
func (m GestureMapper) MapLandmarks(landmarks []Landmark) Sample {
	if len(landmarks) == 0 {
		return Sample{}
	}
	var sum float64
	for _, l := range landmarks {
		sum += l.X
	}
	averageX := sum / float64(len(landmarks))

	pinching := false
	if len(landmarks) > indexTip {
		a, b := landmarks[thumbTip], landmarks[indexTip]
		dist := math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y) + (a.Z-b.Z)*(a.Z-b.Z))
		pinching = m.IsPinch(dist)
	}
	return m.Map(averageX, pinching)
}
