package dropdown

import (
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/marcus/dropdown/pkg/dom"
)

// Typeable is the menu capability the widget probes for: forwarding
// printable keys typed on the trigger into the menu's selection.
type Typeable interface {
	TypeToSelect(key string)
}

// ItemNavigator is the focus-transfer capability of a contained menu.
type ItemNavigator interface {
	FocusFirstItem() bool
	FocusLastItem() bool
}

// typeToSelectTimeout resets the rolling search buffer between bursts of
// typing.
const typeToSelectTimeout = time.Second

// Item is a single selectable menu entry.
type Item struct {
	Label    string
	Value    string
	Disabled bool

	el *dom.Element
}

// Element returns the item's element.
func (it *Item) Element() *dom.Element { return it.el }

// Menu is a list of activatable items hosted in a single element subtree.
// It emits activate events when the active item changes and select events
// when an item is chosen. Items carry role="menuitem" so containers can
// recognize focus inside the menu.
type Menu struct {
	el    *dom.Element
	items []*Item

	active int

	typed   string
	typedAt time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewMenu builds a menu with the given items.
func NewMenu(doc *dom.Document, items []Item) *Menu {
	m := &Menu{
		el:     doc.CreateElement("menu"),
		active: -1,
		now:    time.Now,
	}
	m.el.SetWidget(m)
	m.el.SetAttribute("role", "menu")
	for i := range items {
		it := items[i]
		it.el = doc.CreateElement("menuitem")
		it.el.SetAttribute("role", "menuitem")
		it.el.SetText(it.Label)
		it.el.SetTabbable(!it.Disabled)
		it.el.SetWidget(&it)
		m.items = append(m.items, &it)
		m.el.AppendChild(it.el)
	}
	// Keydowns bubbling up from a focused item drive navigation directly;
	// printable keys feed the search buffer.
	m.el.AddEventListener(dom.EventKeyDown, func(ev *dom.Event) {
		if m.HandleKey(ev.Key) {
			ev.PreventDefault()
			return
		}
		if !modifierKeys[ev.Key] && len([]rune(ev.Key)) == 1 {
			m.TypeToSelect(ev.Key)
		}
	})
	return m
}

// Element returns the menu's host element.
func (m *Menu) Element() *dom.Element { return m.el }

// Items returns the menu's items.
func (m *Menu) Items() []*Item { return m.items }

// ActiveItem returns the currently active item, or nil.
func (m *Menu) ActiveItem() *Item {
	if m.active < 0 || m.active >= len(m.items) {
		return nil
	}
	return m.items[m.active]
}

// ContainsElement reports whether el belongs to this menu's subtree.
func (m *Menu) ContainsElement(el *dom.Element) bool {
	return el != nil && m.el.Contains(el)
}

// FocusFirstItem activates and focuses the first enabled item.
func (m *Menu) FocusFirstItem() bool {
	for i, it := range m.items {
		if !it.Disabled {
			m.activate(i, true)
			return true
		}
	}
	return false
}

// FocusLastItem activates and focuses the last enabled item.
func (m *Menu) FocusLastItem() bool {
	for i := len(m.items) - 1; i >= 0; i-- {
		if !m.items[i].Disabled {
			m.activate(i, true)
			return true
		}
	}
	return false
}

// FocusNextItem moves activation down, stopping at the last enabled item.
func (m *Menu) FocusNextItem() bool {
	for i := m.active + 1; i < len(m.items); i++ {
		if !m.items[i].Disabled {
			m.activate(i, true)
			return true
		}
	}
	return false
}

// FocusPrevItem moves activation up, stopping at the first enabled item.
func (m *Menu) FocusPrevItem() bool {
	for i := m.active - 1; i >= 0; i-- {
		if !m.items[i].Disabled {
			m.activate(i, true)
			return true
		}
	}
	return false
}

// activate makes item i active, optionally moving document focus to it, and
// emits an activate event carrying the item.
func (m *Menu) activate(i int, focus bool) {
	if i == m.active {
		if focus {
			dom.RequestFocus(m.items[i].el)
		}
		return
	}
	m.active = i
	it := m.items[i]
	if focus {
		dom.RequestFocus(it.el)
	}
	it.el.DispatchEvent(&dom.Event{Type: dom.EventActivate, Bubbles: true, Detail: it})
}

// SelectActive chooses the active item, emitting a select event.
func (m *Menu) SelectActive() {
	it := m.ActiveItem()
	if it == nil || it.Disabled {
		return
	}
	it.el.DispatchEvent(&dom.Event{Type: dom.EventSelect, Bubbles: true, Detail: it})
}

// SelectItem chooses the item at index i directly.
func (m *Menu) SelectItem(i int) {
	if i < 0 || i >= len(m.items) || m.items[i].Disabled {
		return
	}
	m.activate(i, true)
	m.SelectActive()
}

// TypeToSelect appends key to a rolling search buffer and activates the
// best-matching enabled item. The buffer resets after a pause in typing.
func (m *Menu) TypeToSelect(key string) {
	if len([]rune(key)) != 1 {
		return
	}
	now := m.now()
	if now.Sub(m.typedAt) > typeToSelectTimeout {
		m.typed = ""
	}
	m.typedAt = now
	m.typed += strings.ToLower(key)

	labels := make([]string, len(m.items))
	for i, it := range m.items {
		labels[i] = strings.ToLower(it.Label)
	}
	for _, match := range fuzzy.Find(m.typed, labels) {
		if !m.items[match.Index].Disabled {
			m.activate(match.Index, true)
			return
		}
	}
}

// HandleKey processes a keydown that reached the menu while it has focus.
// Returns true when the key was consumed.
func (m *Menu) HandleKey(key string) bool {
	switch key {
	case "down":
		m.FocusNextItem()
		return true
	case "up":
		m.FocusPrevItem()
		return true
	case "home":
		m.FocusFirstItem()
		return true
	case "end":
		m.FocusLastItem()
		return true
	case "enter":
		m.SelectActive()
		return true
	}
	return false
}
