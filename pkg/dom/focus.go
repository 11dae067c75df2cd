package dom

// FocusSetter is the richer focus capability: widgets that implement it take
// focus with their own bookkeeping (scroll-into-view, selection state).
type FocusSetter interface {
	SetFocus()
}

// Focuser is the plain focus capability.
type Focuser interface {
	Focus()
}

// RequestFocus moves focus to v by probing its capabilities in priority
// order: SetFocus first, then Focus, then, for a bare *Element, document
// focus directly. It reports whether any capability accepted the request.
func RequestFocus(v any) bool {
	switch t := v.(type) {
	case FocusSetter:
		t.SetFocus()
		return true
	case Focuser:
		t.Focus()
		return true
	case *Element:
		if t == nil || t.doc == nil {
			return false
		}
		t.doc.Focus(t)
		return true
	}
	return false
}
