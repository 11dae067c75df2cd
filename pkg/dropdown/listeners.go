package dropdown

import "github.com/marcus/dropdown/pkg/dom"

// listenerSet is the owned resource behind outside-dismissal: two document
// listeners (keydown, mousedown) plus two panel listeners (activate,
// select). The handlers are bound once at connect time; attach and detach
// move all four as a unit so the pair of document handlers can never
// diverge across repeated show/hide cycles.
//
// The source this widget descends from re-added its document keydown
// handler on every show and only ever removed the mousedown one, leaking a
// keydown registration per cycle. That is fixed here deliberately: the set
// detaches symmetrically.
type listenerSet struct {
	doc   *dom.Document
	panel *dom.Element

	onDocKey   dom.Handler
	onDocMouse dom.Handler
	onActivate dom.Handler
	onSelect   dom.Handler

	docKey   dom.Handle
	docMouse dom.Handle
	activate dom.Handle
	selected dom.Handle

	attached bool
}

// attach installs all four listeners. Attaching an already attached set is
// a no-op, which keeps redundant show() calls from stacking handlers.
func (ls *listenerSet) attach() {
	if ls.attached {
		return
	}
	ls.docKey = ls.doc.AddEventListener(dom.EventKeyDown, ls.onDocKey)
	ls.docMouse = ls.doc.AddEventListener(dom.EventMouseDown, ls.onDocMouse)
	ls.activate = ls.panel.AddEventListener(dom.EventActivate, ls.onActivate)
	ls.selected = ls.panel.AddEventListener(dom.EventSelect, ls.onSelect)
	ls.attached = true
}

// detach removes all four listeners. Safe to call on every exit path,
// including disconnect-while-open.
func (ls *listenerSet) detach() {
	if !ls.attached {
		return
	}
	ls.doc.RemoveEventListener(dom.EventKeyDown, ls.docKey)
	ls.doc.RemoveEventListener(dom.EventMouseDown, ls.docMouse)
	ls.panel.RemoveEventListener(dom.EventActivate, ls.activate)
	ls.panel.RemoveEventListener(dom.EventSelect, ls.selected)
	ls.attached = false
}
