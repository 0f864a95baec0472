package overlay

// Chart defaults: 150 frames either side of the playhead, 301 columns.
const (
	DefaultPastFrames   = 150
	DefaultFutureFrames = 150
	DefaultChartAlpha   = 220

	gridDivisions   = 10
	gridMidlineSize = 3
	nowMarkerSize   = 4
)

// ChartOptions configures RenderChart.
type ChartOptions struct {
	PastFrames      int
	FutureFrames    int
	SmoothingWindow int
	ShowBackground  bool
	// Alpha applies to the background and to every column fill.
	Alpha int
	// Upper fills the part of a column above the split point, Lower the part
	// below it. Their alpha channels are replaced by Alpha.
	Upper Color
	Lower Color
}

// DefaultChartOptions returns the blue-over-orange win probability chart.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		PastFrames:   DefaultPastFrames,
		FutureFrames: DefaultFutureFrames,
		Alpha:        DefaultChartAlpha,
		Upper:        ColorBlue,
		Lower:        ColorOrange,
	}
}

// ImminenceChartOptions recolors base for the goal imminence series: black
// above the value, white below it.
func ImminenceChartOptions(base ChartOptions) ChartOptions {
	base.Upper = ColorBlack
	base.Lower = ColorWhite
	return base
}

// Breadth is the number of frames, and therefore columns, in the window.
func (o ChartOptions) Breadth() int {
	return max(o.PastFrames, 0) + max(o.FutureFrames, 0) + 1
}

// RenderChart draws a window of frames around the playhead into rect. Each
// frame is one column split at height (1-v) from the top: Upper above, Lower
// below. Frames without data are drawn in the neutral no-data fill. Gridlines,
// the "now" marker and a border are drawn over the columns.
func RenderChart(rect Rect, series Series, ph Playhead, opts ChartOptions) []Command {
	past := max(opts.PastFrames, 0)
	breadth := opts.Breadth()

	x0, y0, x1, y1 := pixelBounds(rect)
	w := x1 - x0
	h := y1 - y0

	upper := opts.Upper.WithAlpha(opts.Alpha)
	lower := opts.Lower.WithAlpha(opts.Alpha)
	noData := ColorNoData.WithAlpha(opts.Alpha)

	cmds := make([]Command, 0, 2*breadth+gridDivisions+3)

	if opts.ShowBackground {
		cmds = append(cmds, fill(x0, y0, w, h, ColorWhite.WithAlpha(opts.Alpha)))
	}

	minFrame := ph.Frame - past
	for i := 0; i < breadth; i++ {
		c0, c1 := ColumnSpan(x0, w, i, breadth)
		cw := c1 - c0

		v := SampleAt(series, ph, minFrame+i, opts.SmoothingWindow)
		if v == NoData {
			cmds = append(cmds, fill(c0, y0, cw, h, noData))
			continue
		}

		split := clampInt(y0+int((1-v)*float64(h)), y0, y1)
		if top := split - y0; top > 0 {
			cmds = append(cmds, fill(c0, y0, cw, top, upper))
		}
		if bottom := y1 - split; bottom > 0 {
			cmds = append(cmds, fill(c0, split, cw, bottom, lower))
		}
	}

	for j := 1; j < gridDivisions; j++ {
		thick := 1
		if j == gridDivisions/2 {
			thick = gridMidlineSize
		}
		start, size := band(y0+(h*j)/gridDivisions, thick, y0, y1)
		cmds = append(cmds, line(x0, start, w, size, ColorGrid))
	}

	// Centre of the playhead column; x0 + w/2 when the window is symmetric.
	nowX := x0 + (w*(2*past+1))/(2*breadth)
	start, size := band(nowX, nowMarkerSize, x0, x1)
	cmds = append(cmds, line(start, y0, size, h, ColorOutline))

	cmds = append(cmds, Command{
		Kind:  StrokeRect,
		Rect:  Rect{X: float64(x0), Y: float64(y0), W: float64(w), H: float64(h)},
		Color: ColorOutline,
	})
	return cmds
}
