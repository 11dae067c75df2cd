package dom

// Element is a node in the retained tree. Elements are created through
// Document.CreateElement and keep a reference to their document for the
// whole of their life, attached or not.
type Element struct {
	doc  *Document
	tag  string
	text string

	parent   *Element
	children []*Element

	// shadow is the root of this element's encapsulated subtree, if any.
	// host points back from a shadow root to its owning element.
	shadow *Element
	host   *Element

	attrs    map[string]string
	slot     string
	tabbable bool

	bounds    Rect
	scrollTop int

	// widget is an opaque back-pointer to the widget that owns this
	// element, probed for capability interfaces at dispatch boundaries.
	widget any

	listeners listenerList
}

// Tag returns the element's tag name.
func (el *Element) Tag() string { return el.tag }

// Document returns the owning document.
func (el *Element) Document() *Document { return el.doc }

// Parent returns the parent element, or nil for detached elements and for
// shadow roots.
func (el *Element) Parent() *Element { return el.parent }

// Children returns the child elements in insertion order.
func (el *Element) Children() []*Element {
	out := make([]*Element, len(el.children))
	copy(out, el.children)
	return out
}

// AppendChild attaches child as the last child of el. A child already
// attached elsewhere is reparented. Appending dispatches a slotchange
// event on el so slot consumers can re-resolve.
func (el *Element) AppendChild(child *Element) {
	if child == nil || child == el {
		return
	}
	if child.parent != nil {
		child.parent.detach(child)
	}
	child.parent = el
	el.children = append(el.children, child)
	el.DispatchEvent(&Event{Type: EventSlotChange})
}

// RemoveChild detaches child from el. Removing a child that is not attached
// to el is a no-op. Removal dispatches a slotchange event on el.
func (el *Element) RemoveChild(child *Element) {
	if child == nil || child.parent != el {
		return
	}
	el.detach(child)
	el.DispatchEvent(&Event{Type: EventSlotChange})
}

func (el *Element) detach(child *Element) {
	for i, c := range el.children {
		if c == child {
			el.children = append(el.children[:i], el.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// SetAttribute sets a string attribute.
func (el *Element) SetAttribute(name, value string) {
	if el.attrs == nil {
		el.attrs = make(map[string]string)
	}
	el.attrs[name] = value
}

// Attribute returns the attribute value and whether it is set.
func (el *Element) Attribute(name string) (string, bool) {
	v, ok := el.attrs[name]
	return v, ok
}

// RemoveAttribute clears an attribute.
func (el *Element) RemoveAttribute(name string) {
	delete(el.attrs, name)
}

// SetSlot assigns the element to a named slot on its parent.
func (el *Element) SetSlot(name string) { el.slot = name }

// Slot returns the element's slot assignment.
func (el *Element) Slot() string { return el.slot }

// SlotElements returns the children assigned to the named slot.
func (el *Element) SlotElements(name string) []*Element {
	var out []*Element
	for _, c := range el.children {
		if c.slot == name {
			out = append(out, c)
		}
	}
	return out
}

// SetTabbable marks the element as keyboard-focusable.
func (el *Element) SetTabbable(v bool) { el.tabbable = v }

// Tabbable reports whether the element can take keyboard focus.
func (el *Element) Tabbable() bool { return el.tabbable }

// AttachShadow creates and returns the element's shadow root. Repeated
// calls return the existing root.
func (el *Element) AttachShadow() *Element {
	if el.shadow == nil {
		el.shadow = &Element{doc: el.doc, tag: "#shadow-root", host: el}
	}
	return el.shadow
}

// ShadowRoot returns the element's shadow root, or nil.
func (el *Element) ShadowRoot() *Element { return el.shadow }

// Host returns the owning element for a shadow root, or nil.
func (el *Element) Host() *Element { return el.host }

// Contains reports whether other is el or a descendant of el, crossing
// shadow boundaries through the shadow host. This is the containment test
// used for outside-dismissal decisions.
func (el *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.composedParent() {
		if n == el {
			return true
		}
	}
	return false
}

// composedParent is the parent for path purposes: shadow roots continue at
// their host element.
func (el *Element) composedParent() *Element {
	if el.parent != nil {
		return el.parent
	}
	return el.host
}

// SetBounds records the element's screen rectangle, assigned by the host's
// layout pass.
func (el *Element) SetBounds(r Rect) { el.bounds = r }

// Bounds returns the element's screen rectangle.
func (el *Element) Bounds() Rect { return el.bounds }

// SetScrollTop sets the element's vertical scroll offset, clamped at zero.
func (el *Element) SetScrollTop(n int) {
	if n < 0 {
		n = 0
	}
	el.scrollTop = n
}

// ScrollTop returns the element's vertical scroll offset.
func (el *Element) ScrollTop() int { return el.scrollTop }

// SetText sets the element's display text.
func (el *Element) SetText(s string) { el.text = s }

// Text returns the element's display text.
func (el *Element) Text() string { return el.text }

// SetWidget records the widget that owns this element.
func (el *Element) SetWidget(w any) { el.widget = w }

// Widget returns the owning widget, or nil.
func (el *Element) Widget() any { return el.widget }

// AddEventListener registers a handler for the given event type and returns
// a handle for removal.
func (el *Element) AddEventListener(t EventType, fn Handler) Handle {
	return el.listeners.add(t, fn)
}

// RemoveEventListener removes a previously registered handler. Removing an
// unknown handle is a no-op.
func (el *Element) RemoveEventListener(t EventType, h Handle) {
	el.listeners.remove(t, h)
}

// DispatchEvent delivers ev to listeners on el, then, when ev.Bubbles, to
// listeners along the composed ancestor path and finally to document-level
// listeners. It returns false when a handler called PreventDefault.
func (el *Element) DispatchEvent(ev *Event) bool {
	ev.Target = el
	ev.path = ev.path[:0]
	for n := el; n != nil; n = n.composedParent() {
		ev.path = append(ev.path, n)
	}

	for _, stop := range ev.path {
		if ev.propagationStopped {
			break
		}
		ev.CurrentTarget = stop
		stop.listeners.invoke(ev)
		if !ev.Bubbles {
			break
		}
	}

	if ev.Bubbles && !ev.propagationStopped && el.doc != nil {
		ev.CurrentTarget = nil
		el.doc.listeners.invoke(ev)
	}
	return !ev.defaultPrevented
}

// Walk visits el and every descendant in depth-first order, descending into
// shadow roots. The walk stops when fn returns false.
func (el *Element) Walk(fn func(*Element) bool) bool {
	if !fn(el) {
		return false
	}
	if el.shadow != nil {
		if !el.shadow.Walk(fn) {
			return false
		}
	}
	for _, c := range el.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
