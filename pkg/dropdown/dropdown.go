package dropdown

import "github.com/marcus/dropdown/pkg/dom"

// PositionerFactory builds the geometry engine at connect time. Tests and
// hosts with their own positioning replace the default overlay engine.
type PositionerFactory func(trigger, panel *dom.Element, cfg Config, cb Callbacks) Positioner

// Dropdown is a disclosure widget: a trigger that toggles an adjacent
// panel, with keyboard navigation, outside-interaction dismissal and aria
// attribute upkeep on the trigger's focusable element.
//
// Two flags drive the state machine. visible is authoritative: listeners
// and transitions are active exactly while it is true. open is the public
// mirror consumers read and set; a vetoed transition leaves open reconciled
// back to the pre-transition state. Show and Hide are guarded by visible,
// not open, so redundant property writes cannot start duplicate
// transitions.
type Dropdown struct {
	doc     *dom.Document
	host    *dom.Element
	trigger *dom.Element
	panel   *dom.Element

	open    bool
	visible bool

	placement     Placement
	distance      int
	skidding      int
	hoist         bool
	closeOnSelect bool
	containing    *dom.Element

	pos        Positioner
	posFactory PositionerFactory
	ls         listenerSet

	connected bool
}

// Option configures a Dropdown before Connect.
type Option func(*Dropdown)

// WithPlacement sets the preferred panel placement.
func WithPlacement(p Placement) Option {
	return func(d *Dropdown) { d.placement = p }
}

// WithDistance sets the outward offset between trigger and panel.
func WithDistance(n int) Option {
	return func(d *Dropdown) { d.distance = n }
}

// WithSkidding sets the offset along the trigger.
func WithSkidding(n int) Option {
	return func(d *Dropdown) { d.skidding = n }
}

// WithHoist positions the panel against the viewport instead of the
// trigger's clipping parent.
func WithHoist(v bool) Option {
	return func(d *Dropdown) { d.hoist = v }
}

// WithCloseOnSelect controls whether choosing a menu item closes the panel.
func WithCloseOnSelect(v bool) Option {
	return func(d *Dropdown) { d.closeOnSelect = v }
}

// WithContainingElement overrides the subtree boundary used to decide
// whether an interaction happened outside the widget.
func WithContainingElement(el *dom.Element) Option {
	return func(d *Dropdown) { d.containing = el }
}

// WithPositionerFactory overrides the geometry engine construction.
func WithPositionerFactory(f PositionerFactory) Option {
	return func(d *Dropdown) { d.posFactory = f }
}

// New creates an unconnected dropdown. Call Connect before use.
func New(opts ...Option) *Dropdown {
	d := &Dropdown{
		placement:     PlacementBottomStart,
		closeOnSelect: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Connect mounts the widget into a document: builds the host, trigger and
// panel elements, binds the listener set and the trigger's keyboard
// handlers, and constructs the positioner. The containing element defaults
// to the host when not configured.
func (d *Dropdown) Connect(doc *dom.Document) {
	if d.connected {
		return
	}
	d.doc = doc
	d.host = doc.CreateElement("dropdown")
	d.host.SetWidget(d)
	d.trigger = doc.CreateElement("trigger")
	d.panel = doc.CreateElement("panel")
	d.host.AppendChild(d.trigger)
	d.host.AppendChild(d.panel)

	if d.containing == nil {
		d.containing = d.host
	}

	// Bound once; attached and detached as a unit on visibility changes.
	d.ls = listenerSet{
		doc:        doc,
		panel:      d.panel,
		onDocKey:   d.handleDocumentKeyDown,
		onDocMouse: d.handleDocumentMouseDown,
		onActivate: d.handlePanelActivate,
		onSelect:   d.handlePanelSelect,
	}

	d.trigger.AddEventListener(dom.EventKeyDown, d.handleTriggerKeyDown)
	d.trigger.AddEventListener(dom.EventKeyUp, d.handleTriggerKeyUp)
	d.trigger.AddEventListener(dom.EventMouseDown, d.handleTriggerMouseDown)
	d.trigger.AddEventListener(dom.EventSlotChange, func(*dom.Event) { d.syncAria() })

	factory := d.posFactory
	if factory == nil {
		factory = func(trigger, panel *dom.Element, cfg Config, cb Callbacks) Positioner {
			return NewOverlay(trigger, panel, cfg, cb)
		}
	}
	d.pos = factory(d.trigger, d.panel, d.positionerConfig(), Callbacks{
		AfterShow: d.afterShow,
		AfterHide: d.afterHide,
	})

	d.connected = true
	d.syncAria()
}

// Disconnect unmounts the widget. An open panel is force-hidden and the
// listener set is released even when no symmetric Hide was called, so no
// document handler outlives the instance.
func (d *Dropdown) Disconnect() {
	if !d.connected {
		return
	}
	d.ls.detach()
	d.visible = false
	d.open = false
	if d.pos != nil {
		d.pos.Destroy()
	}
	d.connected = false
}

// Host returns the widget's root element.
func (d *Dropdown) Host() *dom.Element { return d.host }

// TriggerElement returns the trigger slot container.
func (d *Dropdown) TriggerElement() *dom.Element { return d.trigger }

// PanelElement returns the panel element.
func (d *Dropdown) PanelElement() *dom.Element { return d.panel }

// SetTrigger replaces the trigger slot content.
func (d *Dropdown) SetTrigger(el *dom.Element) {
	for _, c := range d.trigger.Children() {
		d.trigger.RemoveChild(c)
	}
	el.SetSlot("trigger")
	d.trigger.AppendChild(el)
}

// SetPanel replaces the panel content.
func (d *Dropdown) SetPanel(el *dom.Element) {
	for _, c := range d.panel.Children() {
		d.panel.RemoveChild(c)
	}
	d.panel.AppendChild(el)
}

// Open reports the externally observable open state.
func (d *Dropdown) Open() bool { return d.open }

// SetOpen routes external open writes through the show/hide entry points.
// This is what reconciles the public flag after a vetoed transition: the
// flags are never mutated independently.
func (d *Dropdown) SetOpen(v bool) {
	if v {
		d.Show()
	} else {
		d.Hide()
	}
}

// Placement returns the configured placement.
func (d *Dropdown) Placement() Placement { return d.placement }

// SetPlacement changes the placement and re-pushes positioner options.
func (d *Dropdown) SetPlacement(p Placement) {
	d.placement = p
	d.pushPositionerConfig()
}

// SetDistance changes the outward offset and re-pushes positioner options.
func (d *Dropdown) SetDistance(n int) {
	d.distance = n
	d.pushPositionerConfig()
}

// SetSkidding changes the along-trigger offset and re-pushes positioner
// options.
func (d *Dropdown) SetSkidding(n int) {
	d.skidding = n
	d.pushPositionerConfig()
}

// SetHoist toggles the fixed positioning strategy and re-pushes positioner
// options.
func (d *Dropdown) SetHoist(v bool) {
	d.hoist = v
	d.pushPositionerConfig()
}

// CloseOnSelect reports whether choosing a menu item closes the panel.
func (d *Dropdown) CloseOnSelect() bool { return d.closeOnSelect }

// SetCloseOnSelect changes the close-on-select behavior.
func (d *Dropdown) SetCloseOnSelect(v bool) { d.closeOnSelect = v }

// ContainingElement returns the outside-interaction boundary.
func (d *Dropdown) ContainingElement() *dom.Element { return d.containing }

// SetContainingElement changes the boundary. Passing nil restores the
// default (the widget host). The document handlers consult the boundary on
// every event, so the listener scope follows the change immediately.
func (d *Dropdown) SetContainingElement(el *dom.Element) {
	if el == nil {
		el = d.host
	}
	d.containing = el
}

// Show opens the panel. No-op while already visible or before Connect.
// The dd-show intent event fires first; a veto leaves the widget hidden
// with open reconciled to false. Otherwise the listener set attaches, both
// flags flip, and the positioner starts the show transition, which
// completes asynchronously with a dd-after-show event.
func (d *Dropdown) Show() {
	if !d.connected || d.visible {
		return
	}
	ev := &dom.Event{Type: dom.EventShow, Bubbles: true, Cancelable: true}
	d.host.DispatchEvent(ev)
	if ev.DefaultPrevented() {
		d.open = false
		d.syncAria()
		return
	}

	// Attach strictly after the intent event is accepted and before the
	// positioner runs, so the interaction that caused the show can never
	// trip outside-dismissal.
	d.ls.attach()
	d.visible = true
	d.open = true
	d.syncAria()
	d.pos.Show()
}

// Hide closes the panel. No-op while already hidden. The dd-hide intent
// event fires first; a veto forces open back to true and keeps the panel
// visible. Otherwise the listener set detaches, both flags flip, and the
// positioner starts the hide transition, completing with dd-after-hide.
func (d *Dropdown) Hide() {
	if !d.connected || !d.visible {
		return
	}
	ev := &dom.Event{Type: dom.EventHide, Bubbles: true, Cancelable: true}
	d.host.DispatchEvent(ev)
	if ev.DefaultPrevented() {
		d.open = true
		d.syncAria()
		return
	}

	d.ls.detach()
	d.visible = false
	d.open = false
	d.syncAria()
	d.pos.Hide()
}

// Reposition recomputes panel geometry without a visibility change. No-op
// while hidden.
func (d *Dropdown) Reposition() {
	if !d.connected || !d.visible {
		return
	}
	d.pos.Reposition()
}

func (d *Dropdown) positionerConfig() Config {
	strategy := StrategyAbsolute
	if d.hoist {
		strategy = StrategyFixed
	}
	return Config{
		Strategy:  strategy,
		Placement: d.placement,
		Distance:  d.distance,
		Skidding:  d.skidding,
	}
}

func (d *Dropdown) pushPositionerConfig() {
	if d.pos != nil {
		d.pos.SetOptions(d.positionerConfig())
	}
}

func (d *Dropdown) afterShow() {
	d.host.DispatchEvent(&dom.Event{Type: dom.EventAfterShow, Bubbles: true})
}

func (d *Dropdown) afterHide() {
	d.panel.SetScrollTop(0)
	d.host.DispatchEvent(&dom.Event{Type: dom.EventAfterHide, Bubbles: true})
}

// accessibleTrigger resolves the focusable element inside the trigger slot
// that should carry aria state. Recomputed on every use; slot content may
// change underneath the widget.
func (d *Dropdown) accessibleTrigger() *dom.Element {
	if d.trigger == nil {
		return nil
	}
	return resolveAccessibleTrigger(d.trigger.Children())
}

// syncAria mirrors the open state onto the accessible trigger. A trigger
// with no focusable element forgoes the attributes; that is a silent no-op,
// not an error.
func (d *Dropdown) syncAria() {
	at := d.accessibleTrigger()
	if at == nil {
		return
	}
	at.SetAttribute("aria-haspopup", "true")
	if d.open {
		at.SetAttribute("aria-expanded", "true")
	} else {
		at.SetAttribute("aria-expanded", "false")
	}
}

// focusTrigger returns focus to the accessible trigger, preferring the
// owning widget's focus capability over raw element focus.
func (d *Dropdown) focusTrigger() {
	at := d.accessibleTrigger()
	if at == nil {
		return
	}
	if w := at.Widget(); w != nil && dom.RequestFocus(w) {
		return
	}
	dom.RequestFocus(at)
}

// menu returns the first descendant of the panel whose widget exposes the
// type-to-select capability, or nil when the panel holds no menu.
func (d *Dropdown) menu() Typeable {
	var found Typeable
	d.panel.Walk(func(n *dom.Element) bool {
		if t, ok := n.Widget().(Typeable); ok {
			found = t
			return false
		}
		return true
	})
	return found
}

// handleDocumentKeyDown implements document-scope dismissal: Escape closes
// and refocuses the trigger; Tab either closes immediately when focus sits
// on a menu item, or defers one turn so focus can settle and then closes if
// it left the containing element.
func (d *Dropdown) handleDocumentKeyDown(ev *dom.Event) {
	switch ev.Key {
	case "esc":
		d.Hide()
		d.focusTrigger()
	case "tab":
		if active := d.doc.ActiveElement(); active != nil {
			if role, _ := active.Attribute("role"); role == "menuitem" {
				d.Hide()
				d.focusTrigger()
				return
			}
		}
		d.doc.Defer(func() {
			if !d.visible {
				return
			}
			active := d.doc.ActiveElement()
			if active == nil || !d.containing.Contains(active) {
				// Focus moved outside: close without stealing it back.
				d.Hide()
			}
		})
	}
}

// handleDocumentMouseDown closes the panel when the event's composed path
// does not include the containing element. The full path, not the target,
// decides this so clicks inside shadow content of a custom trigger still
// count as inside.
func (d *Dropdown) handleDocumentMouseDown(ev *dom.Event) {
	if !ev.PathContains(d.containing) {
		d.Hide()
	}
}

// handlePanelActivate scrolls the activated menu item into view.
func (d *Dropdown) handlePanelActivate(ev *dom.Event) {
	it, ok := ev.Detail.(*Item)
	if !ok {
		return
	}
	d.scrollItemIntoView(it)
}

// handlePanelSelect closes the panel and returns focus to the trigger when
// close-on-select is enabled.
func (d *Dropdown) handlePanelSelect(*dom.Event) {
	if !d.closeOnSelect {
		return
	}
	d.Hide()
	d.focusTrigger()
}

// scrollItemIntoView adjusts the panel's scroll offset so the item's row is
// within the visible window.
func (d *Dropdown) scrollItemIntoView(it *Item) {
	parent := it.Element().Parent()
	if parent == nil {
		return
	}
	row := -1
	for i, c := range parent.Children() {
		if c == it.Element() {
			row = i
			break
		}
	}
	if row < 0 {
		return
	}
	height := d.panel.Bounds().H
	if height <= 0 {
		height = len(parent.Children())
	}
	top := d.panel.ScrollTop()
	switch {
	case row < top:
		d.panel.SetScrollTop(row)
	case row >= top+height:
		d.panel.SetScrollTop(row - height + 1)
	}
}
