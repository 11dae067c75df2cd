package dropdown

import "github.com/marcus/dropdown/pkg/dom"

// modifierKeys are never forwarded to the menu's type-to-select.
var modifierKeys = map[string]bool{
	"tab":   true,
	"shift": true,
	"meta":  true,
	"ctrl":  true,
	"alt":   true,
}

// handleTriggerKeyDown maps keys pressed on the trigger region, in priority
// order: Escape refocuses and closes; Space/Enter toggle without moving
// focus into the panel, so the same key can close what it opened; arrows
// open and transfer focus straight into the menu; anything else printable
// feeds the menu's type-to-select while open.
func (d *Dropdown) handleTriggerKeyDown(ev *dom.Event) {
	switch ev.Key {
	case "esc":
		d.focusTrigger()
		d.Hide()
		return

	case "enter", " ":
		ev.PreventDefault()
		if d.visible {
			d.Hide()
		} else {
			d.Show()
		}
		return

	case "down", "up":
		ev.PreventDefault()
		if !d.visible {
			d.Show()
		}
		if nav, ok := d.menu().(ItemNavigator); ok {
			if ev.Key == "down" {
				nav.FocusFirstItem()
			} else {
				nav.FocusLastItem()
			}
		}
		return
	}

	if d.visible && !modifierKeys[ev.Key] && len([]rune(ev.Key)) == 1 {
		if m := d.menu(); m != nil {
			m.TypeToSelect(ev.Key)
		}
	}
}

// handleTriggerKeyUp suppresses the default Space action, which would
// otherwise produce a duplicate activation in some input pipelines.
func (d *Dropdown) handleTriggerKeyUp(ev *dom.Event) {
	if ev.Key == " " {
		ev.PreventDefault()
	}
}

// handleTriggerMouseDown toggles the panel on trigger clicks.
func (d *Dropdown) handleTriggerMouseDown(*dom.Event) {
	if d.visible {
		d.Hide()
	} else {
		d.Show()
	}
}
