package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// formatSeconds renders whole seconds as MM:SS, or HH:MM:SS past an
// hour.
func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// truncateLabel shortens a label to fit width, ANSI-aware.
func truncateLabel(label string, width int) string {
	if width < 1 {
		return ""
	}
	if ansi.StringWidth(label) <= width {
		return label
	}
	if width <= 3 {
		return ansi.Truncate(label, width, "")
	}
	return strings.TrimRight(ansi.Truncate(label, width-3, ""), " ") + "..."
}
