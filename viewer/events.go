package viewer

import (
	"fmt"

	"github.com/richinsley/dualview/graphics"
	"github.com/richinsley/dualview/transform"
)

// EventKind classifies what an input event asks the controller to do.
type EventKind int

const (
	EventToggleMode EventKind = iota
	EventTransform
	EventToggleFilter
	EventResetTransform
	EventExit
)

// Event is a typed request produced from user input.
type Event struct {
	Kind   EventKind
	Delta  transform.Delta // EventTransform
	Filter Filter          // EventToggleFilter
}

func (e Event) String() string {
	switch e.Kind {
	case EventToggleMode:
		return "toggle-mode"
	case EventTransform:
		return "transform:" + e.Delta.String()
	case EventToggleFilter:
		return "filter:" + e.Filter.String()
	case EventResetTransform:
		return "reset-transform"
	case EventExit:
		return "exit"
	}
	return fmt.Sprintf("event(%d)", int(e.Kind))
}

// Binding maps one key to an event. Repeats allows OS key repeat to fire the
// event again while the key is held.
type Binding struct {
	Event   Event
	Repeats bool
}

// Keymap is the table from keys to events the controller consumes.
type Keymap map[graphics.Key]Binding

// DefaultKeymap returns the viewer's standard bindings: Esc quits, 1-4 toggle
// filters, g switches back end, i/o zoom, left/right rotate, up/down pan and
// r resets the transform.
func DefaultKeymap() Keymap {
	delta := func(d transform.Delta) Binding {
		return Binding{Event: Event{Kind: EventTransform, Delta: d}, Repeats: true}
	}
	filter := func(f Filter) Binding {
		return Binding{Event: Event{Kind: EventToggleFilter, Filter: f}}
	}
	return Keymap{
		graphics.KeyEscape: {Event: Event{Kind: EventExit}},
		graphics.KeyG:      {Event: Event{Kind: EventToggleMode}},
		graphics.KeyR:      {Event: Event{Kind: EventResetTransform}},
		graphics.Key1:      filter(FilterGrayscale),
		graphics.Key2:      filter(FilterBlur),
		graphics.Key3:      filter(FilterEdge),
		graphics.Key4:      filter(FilterPixelate),
		graphics.KeyI:      delta(transform.ScaleUp),
		graphics.KeyO:      delta(transform.ScaleDown),
		graphics.KeyLeft:   delta(transform.RotateLeft),
		graphics.KeyRight:  delta(transform.RotateRight),
		graphics.KeyUp:     delta(transform.PanUp),
		graphics.KeyDown:   delta(transform.PanDown),
	}
}

// Events translates key presses into events, dropping unbound keys and
// repeats of bindings that do not repeat.
func (k Keymap) Events(keys []graphics.KeyEvent) []Event {
	var events []Event
	for _, ke := range keys {
		b, ok := k[ke.Key]
		if !ok || (ke.Repeat && !b.Repeats) {
			continue
		}
		events = append(events, b.Event)
	}
	return events
}
