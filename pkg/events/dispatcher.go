package events

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownEvent is returned when binding to a name the dispatcher does not emit.
var ErrUnknownEvent = errors.New("unknown event")

// Event is a single named notification. Payload is nil when the event carries none.
type Event struct {
	Name    string
	Payload any
}

// Handler receives an emitted event.
type Handler func(Event)

// Emitter is implemented by anything that exposes named notifications.
type Emitter interface {
	Events() []string
	Bind(name string, handler Handler) error
}

// Dispatcher holds the handlers for one emitting instance.
// Handlers run synchronously, in the order they were bound.
type Dispatcher struct {
	names    []string
	handlers map[string][]Handler
}

// NewDispatcher creates a dispatcher that may emit the given event names.
func NewDispatcher(names ...string) *Dispatcher {
	d := &Dispatcher{
		names:    slices.Clone(names),
		handlers: make(map[string][]Handler, len(names)),
	}
	for _, n := range names {
		d.handlers[n] = nil
	}
	return d
}

// Events returns the declared event names in declaration order.
func (d *Dispatcher) Events() []string {
	return slices.Clone(d.names)
}

// Bind registers handler for name.
func (d *Dispatcher) Bind(name string, handler Handler) error {
	if _, ok := d.handlers[name]; !ok {
		return fmt.Errorf("bind %q: %w", name, ErrUnknownEvent)
	}
	if handler == nil {
		return fmt.Errorf("bind %q: nil handler", name)
	}
	d.handlers[name] = append(d.handlers[name], handler)
	return nil
}

// Emit delivers an event to every handler bound to name.
// Emitting an undeclared name is a programming error and panics.
func (d *Dispatcher) Emit(name string, payload any) {
	hs, ok := d.handlers[name]
	if !ok {
		panic(fmt.Sprintf("events: emit of undeclared event %q", name))
	}
	ev := Event{Name: name, Payload: payload}
	// Handlers bound while emitting are not called for this event.
	for _, h := range hs[:len(hs):len(hs)] {
		h(ev)
	}
}

// HandlerCount reports how many handlers are bound to name.
func (d *Dispatcher) HandlerCount(name string) int {
	return len(d.handlers[name])
}
