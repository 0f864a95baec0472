package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/replaylens/internal/overlay"
	"github.com/tonhe/replaylens/tui/components"
	"github.com/tonhe/replaylens/tui/styles"
)

// trailFrames is how much history the readout sparkline shows.
const trailFrames = 90

// WindowData is what the analysis window shows for the current frame.
type WindowData struct {
	ReplayID  string
	Eval      overlay.Series
	Imminence overlay.Series
	Playhead  overlay.Playhead
	Options   overlay.ChartOptions
	Loaded    bool
}

// AnalysisWindow is the modal that shows numeric readouts and both series
// charts for the open replay.
type AnalysisWindow struct {
	theme   styles.Theme
	sty     *styles.Styles
	width   int
	height  int
	visible bool
}

// NewAnalysisWindow creates a hidden window with the given theme.
func NewAnalysisWindow(theme styles.Theme) AnalysisWindow {
	return AnalysisWindow{
		theme: theme,
		sty:   styles.NewStyles(theme),
	}
}

// Toggle flips the window visibility.
func (w *AnalysisWindow) Toggle() { w.visible = !w.visible }

// Open shows the window.
func (w *AnalysisWindow) Open() { w.visible = true }

// Close hides the window.
func (w *AnalysisWindow) Close() { w.visible = false }

// IsVisible returns whether the window is showing.
func (w AnalysisWindow) IsVisible() bool { return w.visible }

// SetSize updates the available dimensions.
func (w *AnalysisWindow) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// View renders the window centered in the available space.
func (w AnalysisWindow) View(d WindowData) string {
	mw := modalWidth(w.width, 40, 72)
	inner := mw - 6

	var content string
	if !d.Loaded {
		content = w.sty.ReadoutLabel.Render("No analysis for this replay.\nPress the analysis key to generate one.")
	} else {
		content = w.renderLoaded(d, inner)
	}

	title := "Analysis"
	if d.ReplayID != "" {
		title += ": " + truncate(d.ReplayID, inner-12)
	}
	modal := titledModal(w.theme, w.sty, title, content, inner)
	return lipgloss.Place(w.width, w.height, lipgloss.Center, lipgloss.Center, modal)
}

// The win probability series is the orange team's chance: 0 means blue is
// winning, 1 means orange is.
func (w AnalysisWindow) renderLoaded(d WindowData, inner int) string {
	frame := d.Playhead.Frame
	smooth := d.Options.SmoothingWindow
	eval := overlay.SampleAt(d.Eval, d.Playhead, frame, smooth)
	imm := overlay.SampleAt(d.Imminence, d.Playhead, frame, smooth)

	readout := func(label, value string) string {
		return w.sty.ReadoutLabel.Render(padRight(label, 18)) + w.sty.ReadoutValue.Render(value)
	}

	lines := []string{
		readout("Blue win chance", components.FormatPercent(invert(eval))),
		readout("Orange win chance", components.FormatPercent(eval)),
		readout("Goal imminence", components.FormatPercent(imm)),
		readout("Frame", fmt.Sprintf("%d", frame)),
		"",
		w.sty.ReadoutLabel.Render("Recent ") + w.sty.TrailStyle.Render(
			components.Sparkline(trail(d.Eval, d.Playhead, trailFrames), inner-7, 0, 1)),
		"",
	}

	chartRows := max((w.height-len(lines)-8)/2, 3)
	lines = append(lines,
		w.sty.ReadoutLabel.Render("Win probability"),
		renderSeriesChart(d.Eval, d.Playhead, d.Options, inner, chartRows, w.theme.Base00),
		w.sty.ReadoutLabel.Render("Goal imminence"),
		renderSeriesChart(d.Imminence, d.Playhead, overlay.ImminenceChartOptions(d.Options), inner, chartRows, w.theme.Base00),
	)
	return strings.Join(lines, "\n")
}

// renderSeriesChart draws one chart filling a cols×rows canvas.
func renderSeriesChart(series overlay.Series, ph overlay.Playhead, opts overlay.ChartOptions, cols, rows int, bg lipgloss.Color) string {
	c := components.NewCanvas(cols, rows, bg)
	size := c.Size()
	overlay.Replay(c, overlay.RenderChart(overlay.Rect{W: size.W, H: size.H}, series, ph, opts))
	return c.Render()
}

// trail returns the last n samples up to the playhead, NoData where the
// frame has no data.
func trail(series overlay.Series, ph overlay.Playhead, n int) []float64 {
	out := make([]float64, 0, n)
	for f := ph.Frame - n + 1; f <= ph.Frame; f++ {
		out = append(out, overlay.SampleAt(series, ph, f, 0))
	}
	return out
}

func invert(p float64) float64 {
	if p < 0 {
		return p
	}
	return 1 - p
}
