package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hand-invaders/internal/component"
	"hand-invaders/internal/entity"
	"hand-invaders/pkg/geom"
	"hand-invaders/pkg/render"
	"hand-invaders/pkg/render/mocks"
)

type backendLog struct {
	created   map[render.Kind]int
	updated   int
	destroyed []render.Handle
}

func newLoggedBackend(ctrl *gomock.Controller, failKind render.Kind) (*mocks.MockBackend, *backendLog) {
	log := &backendLog{created: map[render.Kind]int{}}
	next := render.Handle(0)

	m := mocks.NewMockBackend(ctrl)
	m.EXPECT().CreateVisual(gomock.Any(), gomock.Any()).DoAndReturn(func(v render.Visual, _ geom.Rect) (render.Handle, error) {
		log.created[v.Kind]++
		if v.Kind == failKind {
			return 0, errors.New("texture missing")
		}
		next++
		return next, nil
	}).AnyTimes()
	m.EXPECT().UpdateVisual(gomock.Any(), gomock.Any(), gomock.Any()).Do(func(render.Handle, geom.Rect, bool) {
		log.updated++
	}).AnyTimes()
	m.EXPECT().DestroyVisual(gomock.Any()).Do(func(h render.Handle) {
		log.destroyed = append(log.destroyed, h)
	}).AnyTimes()
	return m, log
}

func smallWorld() *entity.World {
	w := entity.NewWorld()
	w.Player = component.NewPlayer(400, 550, 32, 32)
	w.Player.ID = w.NewEntity()
	w.Enemies = []*component.Enemy{{ID: w.NewEntity(), Kind: component.EnemySniper, Width: 32, Height: 32, Health: 2, Visible: true}}
	w.PlayerBullets = []*component.Bullet{{ID: w.NewEntity(), Width: 6, Height: 12, Health: 1, Visible: true}}
	return w
}

func TestRenderSystem_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend, log := newLoggedBackend(ctrl, "")
	s := NewRenderSystem(backend)
	w := smallWorld()

	s.Sync(w)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, log.created[render.KindEnemy])
	assert.Zero(t, log.updated)

	s.Sync(w)
	assert.Equal(t, 3, log.updated)
	assert.Equal(t, 1, log.created[render.KindEnemy], "visuals are created once")

	w.Enemies = nil
	s.Sync(w)
	assert.Len(t, log.destroyed, 1)
	assert.Equal(t, 2, s.Len())

	s.Reset()
	assert.Len(t, log.destroyed, 3)
	assert.Zero(t, s.Len())
}

func TestRenderSystem_FailedCreateIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend, log := newLoggedBackend(ctrl, render.KindEnemy)
	s := NewRenderSystem(backend)
	w := smallWorld()

	s.Sync(w)
	s.Sync(w)
	s.Sync(w)

	assert.Equal(t, 1, log.created[render.KindEnemy])
	assert.Equal(t, 2, s.Len())
}

func TestRenderSystem_InvisibleEntitiesAreNotCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend, log := newLoggedBackend(ctrl, "")
	s := NewRenderSystem(backend)
	w := smallWorld()
	w.PlayerBullets[0].Visible = false

	s.Sync(w)
	assert.Zero(t, log.created[render.KindPlayerBullet])
}

func TestRenderSystem_NilBackend(t *testing.T) {
	s := NewRenderSystem(nil)
	assert.NotPanics(t, func() {
		s.Sync(smallWorld())
		s.Reset()
	})
}
