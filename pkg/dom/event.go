package dom

// EventType identifies the kind of an event on the wire.
type EventType string

// Canonical event types dispatched by the runtime and the widget layer.
const (
	// Input events, fed in by the host program.
	EventKeyDown   EventType = "keydown"
	EventKeyUp     EventType = "keyup"
	EventMouseDown EventType = "mousedown"

	// Structure events.
	EventSlotChange EventType = "slotchange"

	// Widget lifecycle notifications. The dd-show and dd-hide intent events
	// are cancelable; the after-* events report completed transitions.
	EventShow      EventType = "dd-show"
	EventAfterShow EventType = "dd-after-show"
	EventHide      EventType = "dd-hide"
	EventAfterHide EventType = "dd-after-hide"

	// Menu notifications.
	EventActivate EventType = "activate"
	EventSelect   EventType = "select"
)

// ValidEventType reports whether t is one of the canonical event types.
func ValidEventType(t EventType) bool {
	switch t {
	case EventKeyDown, EventKeyUp, EventMouseDown, EventSlotChange,
		EventShow, EventAfterShow, EventHide, EventAfterHide,
		EventActivate, EventSelect:
		return true
	}
	return false
}

// Event is a single dispatched occurrence. Handlers receive the same Event
// value for every stop on the propagation path.
type Event struct {
	Type          EventType
	Target        *Element
	CurrentTarget *Element

	// Bubbles controls whether the event propagates to ancestors and then
	// to document-level listeners.
	Bubbles bool

	// Cancelable events honor PreventDefault; on non-cancelable events it
	// is a no-op.
	Cancelable bool

	// Key carries the key name for keydown/keyup events ("esc", "tab",
	// "enter", " ", "up", "down", or a single rune).
	Key string

	// X, Y carry screen coordinates for mouse events.
	X, Y int

	// Detail carries event-specific payload (e.g. the selected menu item).
	Detail any

	defaultPrevented   bool
	propagationStopped bool
	path               []*Element
}

// PreventDefault marks a cancelable event as vetoed.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether a handler vetoed the event.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation prevents the event from reaching later stops on the path.
// Handlers already registered on the current stop still run.
func (e *Event) StopPropagation() { e.propagationStopped = true }

// ComposedPath returns the propagation path captured at dispatch time,
// target first. The path crosses shadow boundaries through the shadow
// host, so content inside an encapsulated subtree still counts as inside
// its host's ancestors.
func (e *Event) ComposedPath() []*Element {
	out := make([]*Element, len(e.path))
	copy(out, e.path)
	return out
}

// PathContains reports whether el is a stop on the composed path.
func (e *Event) PathContains(el *Element) bool {
	for _, p := range e.path {
		if p == el {
			return true
		}
	}
	return false
}

// Handler is a registered event callback.
type Handler func(*Event)

// Handle identifies a registered listener for removal.
type Handle int

type listener struct {
	handle Handle
	fn     Handler
}

// listenerList is the shared add/remove/invoke machinery used by both
// elements and the document.
type listenerList struct {
	byType     map[EventType][]listener
	nextHandle Handle
}

func (l *listenerList) add(t EventType, fn Handler) Handle {
	if l.byType == nil {
		l.byType = make(map[EventType][]listener)
	}
	l.nextHandle++
	l.byType[t] = append(l.byType[t], listener{handle: l.nextHandle, fn: fn})
	return l.nextHandle
}

func (l *listenerList) remove(t EventType, h Handle) {
	listeners := l.byType[t]
	for i, reg := range listeners {
		if reg.handle == h {
			l.byType[t] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// invoke calls every listener registered for the event's type. The slice is
// copied first so handlers may add or remove listeners during dispatch.
func (l *listenerList) invoke(ev *Event) {
	regs := l.byType[ev.Type]
	if len(regs) == 0 {
		return
	}
	snapshot := make([]listener, len(regs))
	copy(snapshot, regs)
	for _, reg := range snapshot {
		reg.fn(ev)
	}
}
