package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/replaylens/tui/styles"
)

// HelpView renders a modal overlay showing all keyboard shortcuts.
type HelpView struct {
	theme       styles.Theme
	sty         *styles.Styles
	width       int
	height      int
	visible     bool
	settingsKey string
	analyzeKey  string
}

// NewHelpView creates a new HelpView showing the configured hotkeys.
func NewHelpView(theme styles.Theme, settingsKey, analyzeKey string) HelpView {
	return HelpView{
		theme:       theme,
		sty:         styles.NewStyles(theme),
		settingsKey: settingsKey,
		analyzeKey:  analyzeKey,
	}
}

// Toggle flips the help overlay visibility.
func (v *HelpView) Toggle() {
	v.visible = !v.visible
}

// IsVisible returns whether the help overlay is currently shown.
func (v HelpView) IsVisible() bool {
	return v.visible
}

// SetSize updates the available dimensions for the overlay.
func (v *HelpView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the help overlay as a centered modal box.
func (v HelpView) View() string {
	innerWidth := modalWidth(v.width, 38, 56) - 6

	sectionStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base0E).
		Bold(true)
	keyStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base0D).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base05)
	dimStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base04)

	// Helper to format a keybinding line with aligned columns.
	bindingLine := func(keys, desc string) string {
		return fmt.Sprintf("  %s  %s",
			keyStyle.Render(padRight(keys, 16)),
			descStyle.Render(desc),
		)
	}

	var lines []string

	lines = append(lines, sectionStyle.Render("Global"))
	lines = append(lines, bindingLine("Ctrl+C / q", "Quit"))
	lines = append(lines, bindingLine("?", "Toggle this help"))
	lines = append(lines, "")

	lines = append(lines, sectionStyle.Render("Replay List"))
	lines = append(lines, bindingLine("Up / Down", "Select replay"))
	lines = append(lines, bindingLine("Enter", "Open replay"))
	lines = append(lines, bindingLine("r", "Rescan replay folders"))
	lines = append(lines, bindingLine("m", "Model setup"))
	lines = append(lines, "")

	lines = append(lines, sectionStyle.Render("Replay"))
	lines = append(lines, bindingLine("Space", "Play / pause"))
	lines = append(lines, bindingLine("Left / Right", "Seek 5 seconds"))
	lines = append(lines, bindingLine(", / .", "Step one frame"))
	lines = append(lines, bindingLine("Home / End", "Jump to start / end"))
	lines = append(lines, bindingLine(v.settingsKey, "Settings"))
	lines = append(lines, bindingLine(v.analyzeKey, "Analyze replay"))
	lines = append(lines, bindingLine("w", "Analysis window"))
	lines = append(lines, bindingLine("o", "Overlay on / off"))
	lines = append(lines, bindingLine("D", "Delete analysis"))
	lines = append(lines, bindingLine("Esc", "Close replay"))
	lines = append(lines, "")

	lines = append(lines, sectionStyle.Render("Settings"))
	lines = append(lines, bindingLine("Left / Right", "Change value"))
	lines = append(lines, bindingLine("Enter", "Save"))
	lines = append(lines, bindingLine("Ctrl+R", "Restore defaults"))
	lines = append(lines, bindingLine("Esc", "Cancel"))
	lines = append(lines, "")

	lines = append(lines, dimStyle.Render("[?] close"))

	content := strings.Join(lines, "\n")

	modal := titledModal(v.theme, v.sty, "Keyboard Shortcuts", content, innerWidth)

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
}
