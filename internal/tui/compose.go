package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt composites over on top of base with over's top-left corner at
// cell (x, y). Both strings may carry styling; the splice is done in
// terminal cells, not bytes.
func overlayAt(base, over string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(over, "\n")

	for i, ol := range overLines {
		row := y + i
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		bl := baseLines[row]
		left := ansi.Truncate(bl, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(bl, x+ansi.StringWidth(ol), "")
		baseLines[row] = left + ol + right
	}
	return strings.Join(baseLines, "\n")
}
