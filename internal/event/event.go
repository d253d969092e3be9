// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, см. types.go
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// SubscriptionID — квитанция подписки, нужна для отписки.
type SubscriptionID uint64

type subscription struct {
	id       SubscriptionID
	listener Listener
}

// Dispatcher — синхронный диспетчер событий. Не потокобезопасен:
// им владеет тот же поток, что и игровой цикл.
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    SubscriptionID
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) SubscriptionID {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: d.nextID, listener: listener})
	return d.nextID
}

// SubscribeAll подписывает слушателя сразу на несколько типов.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) []SubscriptionID {
	ids := make([]SubscriptionID, 0, len(types))
	for _, t := range types {
		ids = append(ids, d.Subscribe(t, listener))
	}
	return ids
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, id SubscriptionID) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам в порядке подписки
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}

// Emit — сокращение для Dispatch(Event{...}); nil-диспетчер молча игнорирует событие.
func (d *Dispatcher) Emit(eventType EventType, data interface{}) {
	if d == nil {
		return
	}
	d.Dispatch(Event{Type: eventType, Data: data})
}
