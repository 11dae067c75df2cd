package dropdown

import "github.com/marcus/dropdown/pkg/dom"

// findTabbable returns el itself when it is tabbable, otherwise the first
// tabbable descendant in depth-first order, descending into shadow
// subtrees. Returns nil when nothing under el can take keyboard focus.
func findTabbable(el *dom.Element) *dom.Element {
	if el == nil {
		return nil
	}
	var found *dom.Element
	el.Walk(func(n *dom.Element) bool {
		if n.Tabbable() {
			found = n
			return false
		}
		return true
	})
	return found
}

// resolveAccessibleTrigger finds the element that should carry the aria
// attributes for the given trigger slot content: the first slotted element
// that is itself tabbable, or the first tabbable descendant of any slotted
// element. Pure query; callers apply attributes.
func resolveAccessibleTrigger(slotted []*dom.Element) *dom.Element {
	for _, el := range slotted {
		if el.Tabbable() {
			return el
		}
	}
	for _, el := range slotted {
		if t := findTabbable(el); t != nil {
			return t
		}
	}
	return nil
}
