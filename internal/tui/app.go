// Package tui hosts the dropdown widget inside a bubbletea program. It owns
// the translation from terminal input to document events: key presses and
// mouse clicks become keydown/mousedown dispatches, and each message ends
// with a document flush so deferred work (transition completion, focus
// containment checks) runs at the same points a real event loop would.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/dropdown/internal/history"
	"github.com/marcus/dropdown/pkg/dom"
	"github.com/marcus/dropdown/pkg/dropdown"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(dropdown.Primary).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)
)

const (
	triggerX = 2
	triggerY = 3
)

// Options configures the demo model.
type Options struct {
	Title        string
	TriggerLabel string
	Items        []dropdown.Item
	Widget       []dropdown.Option
	Store        *history.Store
	Logger       *slog.Logger
}

// Model is the bubbletea model hosting a document with one dropdown.
type Model struct {
	doc     *dom.Document
	dd      *dropdown.Dropdown
	menu    *dropdown.Menu
	overlay *dropdown.Overlay
	button  *dom.Element

	title  string
	label  string
	keys   keyMap
	help   help.Model
	store  *history.Store
	logger *slog.Logger

	width  int
	height int
	status string
}

// New builds the demo model: a document, a connected dropdown with a menu
// panel, and a select listener that records choices to the history store.
func New(opts Options) *Model {
	if opts.Title == "" {
		opts.Title = "dropdown"
	}
	if opts.TriggerLabel == "" {
		opts.TriggerLabel = "Menu"
	}
	if len(opts.Items) == 0 {
		opts.Items = []dropdown.Item{
			{Label: "Cut", Value: "cut"},
			{Label: "Copy", Value: "copy"},
			{Label: "Paste", Value: "paste"},
			{Label: "Rename", Value: "rename", Disabled: true},
			{Label: "Delete", Value: "delete"},
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Model{
		title:  opts.Title,
		label:  opts.TriggerLabel,
		keys:   defaultKeyMap(),
		help:   help.New(),
		store:  opts.Store,
		logger: logger,
		width:  80,
		height: 24,
		status: "press enter or space to open the menu",
	}

	doc := dom.NewDocument()
	m.doc = doc

	widgetOpts := append([]dropdown.Option{}, opts.Widget...)
	widgetOpts = append(widgetOpts, dropdown.WithPositionerFactory(
		func(trigger, panel *dom.Element, cfg dropdown.Config, cb dropdown.Callbacks) dropdown.Positioner {
			m.overlay = dropdown.NewOverlay(trigger, panel, cfg, cb)
			return m.overlay
		}))

	m.dd = dropdown.New(widgetOpts...)
	m.dd.Connect(doc)
	doc.Root().AppendChild(m.dd.Host())

	m.button = doc.CreateElement("button")
	m.button.SetTabbable(true)
	m.button.SetText(opts.TriggerLabel)
	m.dd.SetTrigger(m.button)

	m.menu = dropdown.NewMenu(doc, opts.Items)
	m.dd.SetPanel(m.menu.Element())

	m.dd.Host().AddEventListener(dom.EventSelect, m.onSelect)
	m.dd.Host().AddEventListener(dom.EventAfterShow, func(*dom.Event) {
		m.logger.Debug("panel shown", "placement", string(m.dd.Placement()))
	})
	m.dd.Host().AddEventListener(dom.EventAfterHide, func(*dom.Event) {
		m.logger.Debug("panel hidden")
	})

	doc.Focus(m.button)
	m.layout()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.overlay != nil {
			m.overlay.SetViewport(dom.Rect{W: msg.Width, H: msg.Height})
		}
		m.layout()
		m.dd.Reposition()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		m.doc.Flush()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()

	if s == "ctrl+c" {
		return m, tea.Quit
	}
	// q quits only while the menu is closed; while open it is type-ahead.
	if s == "q" && !m.dd.Open() {
		return m, tea.Quit
	}
	if s == "?" && !m.dd.Open() {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	target := m.doc.ActiveElement()
	if target == nil {
		target = m.button
	}
	target.DispatchEvent(&dom.Event{
		Type:       dom.EventKeyDown,
		Key:        s,
		Bubbles:    true,
		Cancelable: true,
	})
	m.doc.Flush()
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	if m.dd.Open() {
		if idx, ok := m.itemAt(msg.X, msg.Y); ok {
			// Keep the widget's dismissal logic out of it: the press lands
			// inside the panel, then the item is chosen.
			m.dd.PanelElement().DispatchEvent(&dom.Event{
				Type: dom.EventMouseDown, Bubbles: true, Cancelable: true,
				X: msg.X, Y: msg.Y,
			})
			m.menu.SelectItem(idx)
			return
		}
	}

	target := m.doc.Root()
	if m.triggerBounds().Contains(msg.X, msg.Y) {
		target = m.button
	} else if m.dd.Open() && m.dd.PanelElement().Bounds().Contains(msg.X, msg.Y) {
		target = m.dd.PanelElement()
	}
	target.DispatchEvent(&dom.Event{
		Type: dom.EventMouseDown, Bubbles: true, Cancelable: true,
		X: msg.X, Y: msg.Y,
	})
}

// itemAt maps a screen cell to a menu item row inside the open panel,
// accounting for the panel border and scroll offset.
func (m *Model) itemAt(x, y int) (int, bool) {
	b := m.dd.PanelElement().Bounds()
	if !b.Contains(x, y) {
		return 0, false
	}
	row := y - b.Y - 1 + m.dd.PanelElement().ScrollTop()
	if row < 0 || row >= len(m.menu.Items()) {
		return 0, false
	}
	if m.menu.Items()[row].Disabled {
		return 0, false
	}
	return row, true
}

func (m *Model) onSelect(ev *dom.Event) {
	it, ok := ev.Detail.(*dropdown.Item)
	if !ok {
		return
	}
	m.status = fmt.Sprintf("selected %s", it.Label)
	m.logger.Debug("item selected", "label", it.Label, "value", it.Value)

	if m.store != nil {
		if err := m.store.Record(it.Label, it.Value, string(m.dd.Placement())); err != nil {
			m.logger.Error("record selection", "error", err)
			m.status = "selection not recorded: " + err.Error()
		}
	}
}

// layout assigns screen rectangles to the trigger and panel elements so the
// positioner and the mouse hit tests share one geometry.
func (m *Model) layout() {
	tb := m.triggerBounds()
	m.button.SetBounds(tb)
	m.dd.TriggerElement().SetBounds(tb)

	panel := dropdown.PanelBox.Render(dropdown.RenderMenu(m.menu))
	b := m.dd.PanelElement().Bounds()
	b.W = lipgloss.Width(panel)
	b.H = lipgloss.Height(panel)
	m.dd.PanelElement().SetBounds(b)
}

func (m *Model) triggerBounds() dom.Rect {
	label := m.renderTrigger()
	return dom.Rect{X: triggerX, Y: triggerY, W: lipgloss.Width(label), H: 1}
}

func (m *Model) renderTrigger() string {
	style := dropdown.TriggerStyle
	arrow := "▾"
	if m.dd.Open() {
		style = dropdown.TriggerOpen
		arrow = "▴"
	}
	return style.Render(m.label + " " + arrow)
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(strings.Repeat(" ", triggerX))
	b.WriteString(m.renderTrigger())
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	view := b.String()
	if !m.dd.Open() {
		return view
	}

	// The panel floats over the base view at the rectangle the positioner
	// chose.
	m.layout()
	m.dd.Reposition()
	pb := m.dd.PanelElement().Bounds()
	panel := dropdown.PanelBox.Render(dropdown.RenderMenu(m.menu))
	return overlayAt(view, panel, pb.X, pb.Y)
}

// Document exposes the hosted document, for tests.
func (m *Model) Document() *dom.Document { return m.doc }

// Widget exposes the hosted dropdown, for tests.
func (m *Model) Widget() *dropdown.Dropdown { return m.dd }

// Menu exposes the hosted menu, for tests.
func (m *Model) Menu() *dropdown.Menu { return m.menu }

// Status returns the current status line.
func (m *Model) Status() string { return m.status }
