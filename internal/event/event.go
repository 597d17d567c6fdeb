// internal/event/event.go
package event

// Type identifies a kind of simulation event.
type Type string

// Event carries a simulation occurrence to its subscribers. Data holds a
// payload struct from types.go when the event has one.
type Event struct {
	Type Type
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher is a synchronous pub/sub hub. All dispatching happens on the
// simulation tick; there is no cross-goroutine delivery.
type Dispatcher struct {
	listeners map[Type][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Type][]Listener)}
}

// Subscribe registers a listener for the given event type.
func (d *Dispatcher) Subscribe(t Type, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// Dispatch delivers e to every subscriber of its type, in subscription order.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
