package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/replaylens/internal/overlay"
	"github.com/tonhe/replaylens/tui/components"
	"github.com/tonhe/replaylens/tui/styles"
)

// ReplayView is the replay screen: the overlay drawn on a terminal canvas
// with a timeline row underneath.
type ReplayView struct {
	theme  styles.Theme
	canvas *components.Canvas
	width  int
	height int
}

// NewReplayView creates a new ReplayView with the given theme.
func NewReplayView(theme styles.Theme) ReplayView {
	return ReplayView{theme: theme}
}

// SetSize updates the available dimensions and rebuilds the canvas.
func (v *ReplayView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.canvas = components.NewCanvas(width, max(height-1, 1), v.theme.Base00)
}

// Screen is the pixel size scenes must be composed for.
func (v ReplayView) Screen() overlay.Size {
	if v.canvas == nil {
		return overlay.Size{}
	}
	return v.canvas.Size()
}

// View draws scene onto the canvas. The scene's Screen is replaced by the
// canvas size.
func (v ReplayView) View(scene overlay.Scene) string {
	if v.canvas == nil {
		return ""
	}
	v.canvas.Clear()
	scene.Screen = v.canvas.Size()
	overlay.Replay(v.canvas, overlay.Compose(scene))
	return lipgloss.JoinVertical(lipgloss.Left, v.canvas.Render(), v.timeline(scene.Playhead))
}

// timeline renders a one-row progress bar for the playhead.
func (v ReplayView) timeline(ph overlay.Playhead) string {
	width := max(v.width, 1)
	filled := 0
	if ph.Total > 0 {
		filled = min(width*min(ph.Frame+1, ph.Total)/ph.Total, width)
	}
	done := lipgloss.NewStyle().Foreground(v.theme.Base0D).Render(strings.Repeat("━", filled))
	rest := lipgloss.NewStyle().Foreground(v.theme.Base03).Render(strings.Repeat("─", width-filled))
	return done + rest
}
