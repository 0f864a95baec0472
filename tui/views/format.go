package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/replaylens/tui/styles"
)

// padRight pads s with spaces on the right to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads s with spaces on the left to the given width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// truncate shortens s to maxLen characters, adding an ellipsis if needed.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// titledModal wraps content in the modal border with title set into the top
// edge.
func titledModal(theme styles.Theme, sty *styles.Styles, title, content string, innerWidth int) string {
	body := sty.ModalBorder.BorderTop(false).Width(innerWidth).Render(content)

	borderFg := lipgloss.NewStyle().Foreground(theme.Base0D).Background(theme.Base00)
	titleText := " " + title + " "
	rightDashes := lipgloss.Width(body) - 2 - 1 - len(titleText)
	if rightDashes < 0 {
		rightDashes = 0
	}
	top := borderFg.Render("╭─") + sty.ModalTitle.Render(titleText) + borderFg.Render(strings.Repeat("─", rightDashes)+"╮")
	return top + "\n" + body
}

// modalWidth picks a modal width for the screen, between lo and hi.
func modalWidth(screen, lo, hi int) int {
	w := lo
	if screen > lo+16 {
		w = min(screen/2, hi)
	}
	return max(w, lo)
}
