package overlay

import "math"

const (
	DefaultBarBackgroundAlpha = 180
	barDivisions              = 5
)

// BarsOptions configures RenderBars.
type BarsOptions struct {
	SmoothingWindow int
	BackgroundAlpha int
}

// Advantage rescales the distance of e from 0.5 to a [0,1] fill proportion.
func Advantage(e float64) float64 {
	return clamp01(math.Abs(e-0.5) * 2)
}

// RenderBars draws the two advantage bars. A value below 0.5 fills the left
// bar from its inner edge outward, a value above 0.5 fills the right bar from
// its own left edge; the fills mirror each other toward the screen centre.
// Backgrounds, subdivision lines and outlines are always drawn, so a replay
// without data shows two empty shells.
func RenderBars(left, right Rect, series Series, ph Playhead, opts BarsOptions) []Command {
	bg := ColorBlack.WithAlpha(opts.BackgroundAlpha)

	cmds := make([]Command, 0, 2+1+2*(barDivisions-1)+2)
	cmds = append(cmds,
		Command{Kind: FillRect, Rect: left, Color: bg},
		Command{Kind: FillRect, Rect: right, Color: bg},
	)

	if InRange(series, ph, ph.Frame) {
		e := Sample(series, ph.Frame, opts.SmoothingWindow)
		adv := Advantage(e)
		switch {
		case e < 0.5 && adv > 0:
			fillW := left.W * adv
			cmds = append(cmds, Command{
				Kind:  FillRect,
				Rect:  Rect{X: left.X + (left.W - fillW), Y: left.Y, W: fillW, H: left.H},
				Color: ColorBarBlue,
			})
		case e > 0.5 && adv > 0:
			cmds = append(cmds, Command{
				Kind:  FillRect,
				Rect:  Rect{X: right.X, Y: right.Y, W: right.W * adv, H: right.H},
				Color: ColorBarOrange,
			})
		}
	}

	for _, bar := range [2]Rect{left, right} {
		for i := 1; i < barDivisions; i++ {
			xi := int(bar.X + (bar.W*float64(i))/barDivisions)
			cmds = append(cmds, Command{
				Kind:  Line,
				Rect:  Rect{X: float64(xi), Y: bar.Y, W: 1, H: bar.H},
				Color: ColorGrid,
			})
		}
	}

	cmds = append(cmds,
		Command{Kind: StrokeRect, Rect: left, Color: ColorOutline},
		Command{Kind: StrokeRect, Rect: right, Color: ColorOutline},
	)
	return cmds
}
