package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/replaylens/tui/styles"
)

// StatusInfo is the playback and job state shown in the status bar.
type StatusInfo struct {
	Frame   int
	Total   int
	Elapsed time.Duration
	Playing bool
	Busy    bool
	// Message is the latest one-line notice, such as a job outcome.
	Message string
	Failed  bool
}

// KeyHint is one "key:desc" pair in the second status line.
type KeyHint struct {
	Key  string
	Desc string
}

// RenderStatusBar renders the two-line footer: playback state and notices
// on top, key hints below.
func RenderStatusBar(theme styles.Theme, info StatusInfo, hints []KeyHint, width int) string {
	bg := theme.Base01
	bgStyle := lipgloss.NewStyle().Background(bg)
	sep := lipgloss.NewStyle().Foreground(theme.Base03).Background(bg).Render(" | ")

	state := "paused"
	stateColor := theme.Base04
	if info.Playing {
		state = "playing"
		stateColor = theme.Base0B
	}
	stateSeg := lipgloss.NewStyle().Foreground(stateColor).Background(bg).Render(state)

	total := "?"
	if info.Total > 0 {
		total = fmt.Sprintf("%d", info.Total)
	}
	frameSeg := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg).
		Render(fmt.Sprintf("frame %d/%s  %s", info.Frame, total, FormatClock(info.Elapsed)))

	jobText := "idle"
	jobColor := theme.Base04
	switch {
	case info.Busy:
		jobText = "analyzing..."
		jobColor = theme.Base0A
	case info.Message != "" && info.Failed:
		jobText = info.Message
		jobColor = theme.Base08
	case info.Message != "":
		jobText = info.Message
		jobColor = theme.Base0B
	}
	jobSeg := lipgloss.NewStyle().Foreground(jobColor).Background(bg).Render(jobText)

	topContent := bgStyle.Render(" ") + stateSeg + sep + frameSeg + sep + jobSeg
	topWidth := lipgloss.Width(topContent)
	if topWidth < width {
		topContent += bgStyle.Render(strings.Repeat(" ", width-topWidth))
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.Base0D).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Base04).Background(bg)
	spacer := bgStyle.Render("  ")

	keys := bgStyle.Render(" ")
	for i, h := range hints {
		if i > 0 {
			keys += spacer
		}
		keys += keyStyle.Render(h.Key) + descStyle.Render(":"+h.Desc)
	}

	keysWidth := lipgloss.Width(keys)
	if keysWidth < width {
		keys += bgStyle.Render(strings.Repeat(" ", width-keysWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, topContent, keys)
}
