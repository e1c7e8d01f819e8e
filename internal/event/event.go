// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — синхронный диспетчер. Подписчики вызываются внутри шага
// симуляции и не должны менять коллекции ECS.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for every given event type.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Dispatch — отправка события всем подписчикам в порядке подписки
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Emit is shorthand for Dispatch(Event{Type: t, Data: data}).
func (d *Dispatcher) Emit(t EventType, data any) {
	d.Dispatch(Event{Type: t, Data: data})
}

// Recorder keeps every event it receives, in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnEvent(event Event) { r.Events = append(r.Events, event) }

// Count returns how many events of type t were recorded.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}
