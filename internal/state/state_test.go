// internal/state/state_test.go
package state

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"hand-invaders/internal/input"
	"hand-invaders/internal/leaderboard"
)

type recordingState struct {
	name string
	log  *[]string
}

func (r recordingState) Enter()             { *r.log = append(*r.log, "enter "+r.name) }
func (r recordingState) Update(float64)     { *r.log = append(*r.log, "update "+r.name) }
func (r recordingState) Draw(*ebiten.Image) {}
func (r recordingState) Exit()              { *r.log = append(*r.log, "exit "+r.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.1) // без состояния ничего не происходит

	a := recordingState{name: "a", log: &log}
	b := recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.1)
	sm.SetState(b)

	assert.Equal(t, []string{"enter a", "update a", "exit a", "enter b"}, log)
	assert.Equal(t, b, sm.Current())
}

// switchingState просит переход прямо из своего Update.
type switchingState struct {
	recordingState
	sm   *StateMachine
	next State
}

func (s switchingState) Update(float64) {
	*s.log = append(*s.log, "update "+s.name)
	s.sm.SetState(s.next)
	*s.log = append(*s.log, "after set "+s.name)
}

type quittingState struct {
	recordingState
}

func (q quittingState) Quit() { *q.log = append(*q.log, "quit "+q.name) }

func TestStateMachineDefersTransitionDuringUpdate(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	b := recordingState{name: "b", log: &log}
	a := switchingState{recordingState: recordingState{name: "a", log: &log}, sm: sm, next: b}
	sm.SetState(a)
	sm.Update(0.1)

	assert.Equal(t, []string{"enter a", "update a", "after set a", "exit a", "enter b"}, log)
	assert.Equal(t, b, sm.Current())

	sm.Update(0.1)
	assert.Equal(t, "update b", log[len(log)-1])
}

func TestStateMachineCloseQuitsRunningGame(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.SetState(quittingState{recordingState{name: "game", log: &log}})
	sm.Close()
	sm.Close()

	assert.Equal(t, []string{"enter game", "quit game", "exit game"}, log)
	assert.Nil(t, sm.Current())

	log = nil
	sm.SetState(recordingState{name: "menu", log: &log})
	sm.Close()
	assert.Equal(t, []string{"enter menu", "exit menu"}, log)
}

func TestPinchFiresOnEdge(t *testing.T) {
	pressed := false
	ctx := &Context{
		Gestures: input.ProviderFunc(func(time.Time) input.Sample {
			return input.Sample{TriggerPressed: pressed}
		}),
	}
	var p pinched
	assert.False(t, p.just(ctx))

	pressed = true
	assert.True(t, p.just(ctx))
	assert.False(t, p.just(ctx), "удержание не повторяет нажатие")

	pressed = false
	assert.False(t, p.just(ctx))
	pressed = true
	assert.True(t, p.just(ctx))

	assert.False(t, (&pinched{}).just(&Context{}), "без жестов щипка нет")
}

func TestRow(t *testing.T) {
	row := Row(1, leaderboard.Entry{Name: "ann", Score: 3400, Wave: 2})
	assert.Equal(t, " 1. ann                3400  W2  ", row)
}
