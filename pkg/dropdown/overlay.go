package dropdown

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/dropdown/pkg/dom"
)

// Overlay is the concrete Positioner: it places the panel rectangle against
// the trigger rectangle in screen cells, flipping to the opposite side when
// the preferred side overflows the boundary. Transitions complete on the
// next document flush, which models the asynchronous show/hide animation of
// a real positioning engine.
type Overlay struct {
	doc     *dom.Document
	trigger *dom.Element
	panel   *dom.Element
	cfg     Config
	cb      Callbacks

	viewport  dom.Rect
	visible   bool
	destroyed bool

	// gen invalidates completion callbacks from superseded transitions.
	gen int
}

// NewOverlay creates a positioner for the given trigger and panel elements.
func NewOverlay(trigger, panel *dom.Element, cfg Config, cb Callbacks) *Overlay {
	return &Overlay{
		doc:      trigger.Document(),
		trigger:  trigger,
		panel:    panel,
		cfg:      cfg,
		cb:       cb,
		viewport: dom.Rect{W: 80, H: 24},
	}
}

// SetViewport sets the screen rectangle used as the fixed-strategy boundary.
func (o *Overlay) SetViewport(r dom.Rect) { o.viewport = r }

// SetOptions replaces the geometry configuration and, when the panel is
// visible, repositions it immediately.
func (o *Overlay) SetOptions(cfg Config) {
	if o.destroyed {
		return
	}
	o.cfg = cfg
	if o.visible {
		o.Reposition()
	}
}

// Show positions the panel and starts the show transition. Completion fires
// TransitionEnd then AfterShow on the next document flush.
func (o *Overlay) Show() {
	if o.destroyed {
		return
	}
	o.visible = true
	o.Reposition()
	o.panel.SetAttribute("data-visible", "true")
	o.complete(o.cb.AfterShow)
}

// Hide starts the hide transition. Completion fires TransitionEnd then
// AfterHide on the next document flush.
func (o *Overlay) Hide() {
	if o.destroyed {
		return
	}
	o.visible = false
	o.panel.RemoveAttribute("data-visible")
	o.complete(o.cb.AfterHide)
}

func (o *Overlay) complete(done func()) {
	o.gen++
	gen := o.gen
	o.doc.Defer(func() {
		if o.destroyed || gen != o.gen {
			return
		}
		if o.cb.TransitionEnd != nil {
			o.cb.TransitionEnd()
		}
		if done != nil {
			done()
		}
	})
}

// Visible reports whether the panel is currently shown.
func (o *Overlay) Visible() bool { return o.visible }

// Destroy tears the positioner down. Pending transition callbacks are
// suppressed and further calls are no-ops.
func (o *Overlay) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true
	o.panel.RemoveAttribute("data-visible")
}

// Reposition recomputes the panel rectangle from the trigger rectangle and
// the current configuration.
func (o *Overlay) Reposition() {
	if o.destroyed {
		return
	}
	anchor := o.trigger.Bounds()
	w, h := o.measurePanel()
	boundary := o.boundary()

	placement := o.cfg.Placement
	if !ValidPlacement(placement) {
		placement = PlacementBottomStart
	}
	r := place(anchor, w, h, placement, o.cfg.Distance, o.cfg.Skidding)
	if overflows(r, boundary, placement) {
		flipped := place(anchor, w, h, placement.flipped(), o.cfg.Distance, o.cfg.Skidding)
		if !overflows(flipped, boundary, placement.flipped()) {
			r = flipped
		}
	}
	r = clampInto(r, boundary)
	o.panel.SetBounds(r)
}

// boundary returns the clipping rectangle for the active strategy: the
// viewport for fixed, the trigger's parent region for absolute.
func (o *Overlay) boundary() dom.Rect {
	if o.cfg.Strategy == StrategyFixed {
		return o.viewport
	}
	if p := o.trigger.Parent(); p != nil && !p.Bounds().Empty() {
		return p.Bounds()
	}
	return o.viewport
}

// measurePanel derives the panel's content size. An explicitly sized panel
// wins; otherwise the size comes from the rendered text of the panel and
// its children, measured with ANSI-aware string width.
func (o *Overlay) measurePanel() (w, h int) {
	if b := o.panel.Bounds(); !b.Empty() {
		return b.W, b.H
	}
	var lines []string
	if t := o.panel.Text(); t != "" {
		lines = append(lines, strings.Split(t, "\n")...)
	}
	for _, c := range o.panel.Children() {
		if t := c.Text(); t != "" {
			lines = append(lines, strings.Split(t, "\n")...)
		}
	}
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	h = len(lines)
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return w, h
}

// place computes the panel rectangle for one placement. Distance pushes the
// panel outward from the anchor; skidding slides it along the anchor.
func place(anchor dom.Rect, w, h int, p Placement, distance, skidding int) dom.Rect {
	var r dom.Rect
	r.W, r.H = w, h

	switch p.side() {
	case "top":
		r.Y = anchor.Y - distance - h
	case "bottom":
		r.Y = anchor.Bottom() + distance
	case "left":
		r.X = anchor.X - distance - w
	case "right":
		r.X = anchor.Right() + distance
	}

	switch p.side() {
	case "top", "bottom":
		switch p.align() {
		case "start":
			r.X = anchor.X
		case "end":
			r.X = anchor.Right() - w
		default:
			r.X = anchor.X + (anchor.W-w)/2
		}
		r.X += skidding
	case "left", "right":
		switch p.align() {
		case "start":
			r.Y = anchor.Y
		case "end":
			r.Y = anchor.Bottom() - h
		default:
			r.Y = anchor.Y + (anchor.H-h)/2
		}
		r.Y += skidding
	}
	return r
}

// overflows reports whether the rectangle crosses the boundary on the
// placement's outward side.
func overflows(r, boundary dom.Rect, p Placement) bool {
	switch p.side() {
	case "top":
		return r.Y < boundary.Y
	case "bottom":
		return r.Bottom() > boundary.Bottom()
	case "left":
		return r.X < boundary.X
	case "right":
		return r.Right() > boundary.Right()
	}
	return false
}

// clampInto shifts the rectangle to fit inside the boundary where possible.
func clampInto(r, boundary dom.Rect) dom.Rect {
	if r.Right() > boundary.Right() {
		r.X = boundary.Right() - r.W
	}
	if r.X < boundary.X {
		r.X = boundary.X
	}
	if r.Bottom() > boundary.Bottom() {
		r.Y = boundary.Bottom() - r.H
	}
	if r.Y < boundary.Y {
		r.Y = boundary.Y
	}
	return r
}
