// internal/bridge/messages.go
package bridge

import "hand-invaders/internal/input"

const (
	MsgTypeHand     = "hand"
	MsgTypeWelcome  = "welcome"
	MsgTypeHUD      = "hud"
	MsgTypeGameOver = "gameOver"
)

// HandMsg — сэмпл трекера ладони из браузера (JSON).
// Если пришли Landmarks, x и признак щипка считаются по ним;
// иначе PinchDistance, если задан, сравнивается с порогом, а Pinch берётся как есть.
type HandMsg struct {
	Type          string           `json:"type"`
	X             float64          `json:"x"`
	Pinch         bool             `json:"pinch"`
	PinchDistance *float64         `json:"pinch_distance,omitempty"`
	Landmarks     []input.Landmark `json:"landmarks,omitempty"`
}

// WelcomeMsg отправляется при подключении и при смене сессии.
type WelcomeMsg struct {
	Type      string `msgpack:"type"`
	SessionID string `msgpack:"sessionId"`
}

// HUDMsg — живые счёт и волна для оверлея в браузере.
type HUDMsg struct {
	Type        string `msgpack:"type"`
	Score       int    `msgpack:"score"`
	Wave        int    `msgpack:"wave"`
	BulletCount int    `msgpack:"bulletCount"`
}

type GameOverMsg struct {
	Type   string `msgpack:"type"`
	Score  int    `msgpack:"score"`
	Wave   int    `msgpack:"wave"`
	Reason string `msgpack:"reason"`
}

// Sample переводит сообщение трекера в сэмпл ввода.
func (m HandMsg) Sample(mapper input.GestureMapper) input.Sample {
	if len(m.Landmarks) > 0 {
		return mapper.MapLandmarks(m.Landmarks)
	}
	pinch := m.Pinch
	if m.PinchDistance != nil {
		pinch = mapper.IsPinch(*m.PinchDistance)
	}
	return mapper.Map(m.X, pinch)
}
