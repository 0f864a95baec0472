package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/replaylens/tui/styles"
)

// HeaderInfo is what the header bar shows about the session.
type HeaderInfo struct {
	ReplayID   string
	InReplay   bool
	Loaded     bool
	Model      string
	ModelReady bool
	Version    string
}

// RenderHeader renders the top header bar with app name, replay, analysis
// state, and model.
func RenderHeader(theme styles.Theme, info HeaderInfo, width int) string {
	bg := theme.Base01
	left := lipgloss.NewStyle().
		Foreground(theme.Base0D).
		Background(bg).
		Bold(true).
		Render("replaylens")

	replay := info.ReplayID
	if !info.InReplay || replay == "" {
		replay = "(no replay)"
	}
	center := lipgloss.NewStyle().
		Foreground(theme.Base05).
		Background(bg).
		Render(replay)

	status := "NO ANALYSIS"
	statusColor := theme.Base0A
	switch {
	case !info.InReplay:
		status = "IDLE"
		statusColor = theme.Base04
	case info.Loaded:
		status = "ANALYZED"
		statusColor = theme.Base0B
	}
	right := lipgloss.NewStyle().
		Foreground(statusColor).
		Background(bg).
		Render(status)

	modelColor := theme.Base04
	modelStr := "model: " + info.Model
	if !info.ModelReady {
		modelColor = theme.Base08
		modelStr += " (not ready)"
	}
	model := lipgloss.NewStyle().
		Foreground(modelColor).
		Background(bg).
		Render(modelStr)

	versionSeg := lipgloss.NewStyle().
		Foreground(theme.Base04).
		Background(bg).
		Render("v" + info.Version)

	content := fmt.Sprintf(" %s  |  %s  |  %s  |  %s  |  %s ", left, center, right, model, versionSeg)

	return lipgloss.NewStyle().
		Background(bg).
		Width(width).
		Render(content)
}
