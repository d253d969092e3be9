// internal/tty/keys.go
package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"hand-invaders/internal/input"
)

// KeyHold — сколько держится нажатие после события клавиши.
// Терминал не сообщает об отпускании, удержание приходит автоповтором.
const KeyHold = 150 * time.Millisecond

// Command — действие пользователя, не относящееся к кораблю.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
)

// Keys переводит события клавиатуры tcell в сэмплы ввода.
type Keys struct {
	steer *input.Latest
	fire  *input.Latest
}

func NewKeys() *Keys {
	return &Keys{
		steer: input.NewLatest(KeyHold),
		fire:  input.NewLatest(KeyHold),
	}
}

// Providers возвращает источники руления и стрельбы для input.Merge.
func (k *Keys) Providers() []input.Provider {
	return []input.Provider{k.steer, k.fire}
}

// Handle разбирает событие клавиши.
func (k *Keys) Handle(ev *tcell.EventKey, now time.Time) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyLeft:
		k.steer.Store(input.Sample{Steer: -1}, now)
	case tcell.KeyRight:
		k.steer.Store(input.Sample{Steer: 1}, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			k.steer.Store(input.Sample{Steer: -1}, now)
		case 'd', 'D':
			k.steer.Store(input.Sample{Steer: 1}, now)
		case ' ':
			k.fire.Store(input.Sample{TriggerPressed: true}, now)
		case 'p', 'P':
			return CommandPause
		case 'q', 'Q':
			return CommandQuit
		}
	}
	return CommandNone
}
