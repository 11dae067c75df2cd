package dropdown

import "github.com/charmbracelet/lipgloss"

// Colors shared by the panel and menu renderers.
var (
	Primary      = lipgloss.Color("212")
	Muted        = lipgloss.Color("241")
	PanelBg      = lipgloss.Color("235")
	BorderNormal = lipgloss.Color("240")
)

// Panel and trigger styles.
var (
	PanelBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal).
			Background(PanelBg).
			Padding(0, 1)

	TriggerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2)

	TriggerOpen = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Padding(0, 2)
)

// Menu item styles.
var (
	ItemNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	ItemActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	ItemDisabled = lipgloss.NewStyle().
			Foreground(Muted)

	MutedText = lipgloss.NewStyle().Foreground(Muted)
)

// RenderMenu renders the menu's items as panel lines, highlighting the
// active item with a cursor.
func RenderMenu(m *Menu) string {
	out := ""
	active := m.ActiveItem()
	for i, it := range m.Items() {
		cursor := "  "
		style := ItemNormal
		switch {
		case it.Disabled:
			style = ItemDisabled
		case it == active:
			style = ItemActive
			cursor = "> "
		}
		if i > 0 {
			out += "\n"
		}
		out += cursor + style.Render(it.Label)
	}
	return out
}
