package dom

// Document owns the element tree, the active (focused) element, the
// document-level listeners used for global dismissal behavior, and the
// deferred task queue that stands in for "the next turn of the event loop".
type Document struct {
	root      *Element
	active    *Element
	listeners listenerList

	deferred []func()
	flushing bool
}

// NewDocument creates a document with an empty root element.
func NewDocument() *Document {
	d := &Document{}
	d.root = &Element{doc: d, tag: "#root"}
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element { return d.root }

// CreateElement creates a detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{doc: d, tag: tag}
}

// AddEventListener registers a document-level handler. Document listeners
// run after the composed path for every bubbling event, regardless of
// where in the tree it was dispatched.
func (d *Document) AddEventListener(t EventType, fn Handler) Handle {
	return d.listeners.add(t, fn)
}

// RemoveEventListener removes a document-level handler.
func (d *Document) RemoveEventListener(t EventType, h Handle) {
	d.listeners.remove(t, h)
}

// ListenerCount returns the number of document-level handlers registered
// for the given event type.
func (d *Document) ListenerCount(t EventType) int {
	return len(d.listeners.byType[t])
}

// Focus makes el the active element. Focusing nil clears focus.
func (d *Document) Focus(el *Element) { d.active = el }

// Blur clears the active element.
func (d *Document) Blur() { d.active = nil }

// ActiveElement returns the element that currently holds focus, or nil.
// The active element may live inside a shadow subtree; containment checks
// against it should use Element.Contains, which crosses shadow boundaries.
func (d *Document) ActiveElement() *Element { return d.active }

// Defer enqueues fn to run on the next Flush. Deferred work runs in FIFO
// order; tasks enqueued during a flush run in the same flush.
func (d *Document) Defer(fn func()) {
	d.deferred = append(d.deferred, fn)
}

// Flush runs the deferred queue to empty. Reentrant calls are no-ops; the
// outermost flush drains everything.
func (d *Document) Flush() {
	if d.flushing {
		return
	}
	d.flushing = true
	defer func() { d.flushing = false }()

	for len(d.deferred) > 0 {
		fn := d.deferred[0]
		d.deferred = d.deferred[1:]
		fn()
	}
}

// Pending returns the number of queued deferred tasks.
func (d *Document) Pending() int { return len(d.deferred) }
