package overlay

// Fractions sizes every overlay element relative to the screen.
type Fractions struct {
	BarWidth   float64 `toml:"bar_width"`
	BarHeight  float64 `toml:"bar_height"`
	MainWidth  float64 `toml:"main_width"`
	MainHeight float64 `toml:"main_height"`
	MainTop    float64 `toml:"main_top"`
}

// DefaultFractions places the bars in the top corners and the chart under
// the scoreboard.
func DefaultFractions() Fractions {
	return Fractions{
		BarWidth:   0.40,
		BarHeight:  0.07,
		MainWidth:  0.20,
		MainHeight: 0.14,
		MainTop:    0.098,
	}
}

// Layout holds the absolute rectangles of every overlay element for one
// screen size.
type Layout struct {
	Screen   Size
	LeftBar  Rect
	RightBar Rect
	Main     Rect
}

// ComputeLayout derives element rectangles from the screen size. Fractions
// are trusted as given; the config loader clamps them.
func ComputeLayout(screen Size, f Fractions) Layout {
	barW := screen.W * f.BarWidth
	barH := screen.H * f.BarHeight

	mainW := screen.W * f.MainWidth
	mainH := screen.H * f.MainHeight

	return Layout{
		Screen:   screen,
		LeftBar:  Rect{X: 0, Y: 0, W: barW, H: barH},
		RightBar: Rect{X: screen.W - barW, Y: 0, W: barW, H: barH},
		Main: Rect{
			X: (screen.W - mainW) * 0.5,
			Y: screen.H * f.MainTop,
			W: mainW,
			H: mainH,
		},
	}
}
