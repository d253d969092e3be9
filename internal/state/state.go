// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран игры: меню, партия, пауза, ввод имени, таблица рекордов.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Quitter — экран, за которым стоит живая партия. При закрытии окна её
// нужно оборвать, чтобы сессия отдала итог и мост разослал gameOver.
type Quitter interface {
	Quit()
}

// StateMachine переключает экраны. Переход, запрошенный изнутри Update
// (партия закончилась, нажата пауза), применяется после возврата из Update:
// экран не получает Exit посреди собственного кадра.
type StateMachine struct {
	current  State
	pending  State
	queued   bool
	updating bool
}

// NewStateMachine создаёт машину без начального экрана.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState меняет экран. Во время Update переход откладывается до конца кадра;
// из нескольких запросов за кадр побеждает последний.
func (sm *StateMachine) SetState(newState State) {
	if sm.updating {
		sm.pending = newState
		sm.queued = true
		return
	}
	sm.switchTo(newState)
}

func (sm *StateMachine) switchTo(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущий экран и применяет отложенный переход.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.updating = true
	sm.current.Update(deltaTime)
	sm.updating = false

	if sm.queued {
		next := sm.pending
		sm.pending, sm.queued = nil, false
		sm.switchTo(next)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Close вызывается при закрытии окна: обрывает партию, если она идёт,
// и выходит из текущего экрана.
func (sm *StateMachine) Close() {
	if sm.current == nil {
		return
	}
	if q, ok := sm.current.(Quitter); ok {
		q.Quit()
	}
	sm.switchTo(nil)
}
