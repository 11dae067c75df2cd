// Package dom provides the retained element tree and event runtime that the
// widget packages build on: elements with string attributes, shadow subtrees
// and slots, event dispatch along composed paths with cancelable events, and
// a document that owns focus and a run-to-idle deferred task queue.
//
// The runtime is single-goroutine by design. Event dispatch and state
// transitions happen synchronously inside handlers; anything that must wait
// for "the next turn" (focus settling, transition completion) goes through
// Document.Defer and runs on the next Flush.
//
// # Quick Start
//
//	doc := dom.NewDocument()
//	btn := doc.CreateElement("button")
//	btn.SetTabbable(true)
//	doc.Root().AppendChild(btn)
//
//	handle := btn.AddEventListener(dom.EventMouseDown, func(ev *dom.Event) {
//	    // ...
//	})
//	btn.DispatchEvent(&dom.Event{Type: dom.EventMouseDown, Bubbles: true})
//	btn.RemoveEventListener(dom.EventMouseDown, handle)
package dom
