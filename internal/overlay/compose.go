package overlay

import "fmt"

// DefaultTitle is drawn at the top of the screen when ShowTitle is set.
const DefaultTitle = "replaylens"

// Reminder line heights as fractions of screen height.
const (
	reminderTopFrac      = 0.10
	reminderSettingsFrac = 0.09
	reminderBelowChart   = 0.24
)

// DisplayConfig is the overlay's view of the user settings. Values are
// expected to be clamped already.
type DisplayConfig struct {
	Enabled             bool
	ShowTopBars         bool
	ShowMainEval        bool
	ShowMainBackground  bool
	ShowTitle           bool
	ShowHotkeyReminders bool
	DebugGrid           bool
	MainEvalAlpha       int
	BarBackgroundAlpha  int
	PastFrames          int
	FutureFrames        int
	SmoothingWindow     int
	Fractions           Fractions
}

// DefaultDisplayConfig mirrors the shipped settings: chart on, bars off.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Enabled:             true,
		ShowTopBars:         false,
		ShowMainEval:        true,
		ShowMainBackground:  true,
		ShowTitle:           false,
		ShowHotkeyReminders: true,
		MainEvalAlpha:       165,
		BarBackgroundAlpha:  DefaultBarBackgroundAlpha,
		PastFrames:          DefaultPastFrames,
		FutureFrames:        DefaultFutureFrames,
		SmoothingWindow:     0,
		Fractions:           DefaultFractions(),
	}
}

// ChartOptions derives the main chart options from the display settings.
func (c DisplayConfig) ChartOptions() ChartOptions {
	opts := DefaultChartOptions()
	opts.PastFrames = c.PastFrames
	opts.FutureFrames = c.FutureFrames
	opts.SmoothingWindow = c.SmoothingWindow
	opts.ShowBackground = c.ShowMainBackground
	opts.Alpha = c.MainEvalAlpha
	return opts
}

// BarsOptions derives the advantage bar options from the display settings.
func (c DisplayConfig) BarsOptions() BarsOptions {
	return BarsOptions{
		SmoothingWindow: c.SmoothingWindow,
		BackgroundAlpha: c.BarBackgroundAlpha,
	}
}

// Status is the host state the overlay reacts to.
type Status struct {
	InReplay bool
	// Busy is set while a regeneration job runs.
	Busy bool
}

// Keys are the display names of the hotkeys shown in reminders.
type Keys struct {
	Settings string
	Analysis string
}

// DefaultKeys returns the stock Z / X bindings.
func DefaultKeys() Keys {
	return Keys{Settings: "Z", Analysis: "X"}
}

// Scene is everything Compose needs to draw one frame.
type Scene struct {
	Screen   Size
	Series   Series
	Playhead Playhead
	Config   DisplayConfig
	Status   Status
	Keys     Keys
	// Title overrides DefaultTitle when non-empty.
	Title string
}

// HasAnalysis reports whether the scene carries a series to draw.
func (s Scene) HasAnalysis() bool {
	return len(s.Series) > 0
}

// ElementKind names an overlay element.
type ElementKind uint8

const (
	AdvantageBars ElementKind = iota
	ScrollingChart
)

func (k ElementKind) String() string {
	switch k {
	case AdvantageBars:
		return "bars"
	case ScrollingChart:
		return "chart"
	default:
		return fmt.Sprintf("element(%d)", uint8(k))
	}
}

// Elements is the fixed draw order of the overlay elements.
var Elements = []ElementKind{AdvantageBars, ScrollingChart}

// Compose draws a full overlay frame: the debug grid, every visible element,
// the title and the hotkey reminders. A disabled overlay produces nothing and
// outside a replay only the debug grid is drawn.
func Compose(s Scene) []Command {
	cfg := s.Config
	if !cfg.Enabled {
		return nil
	}

	var cmds []Command
	if cfg.DebugGrid {
		cmds = append(cmds, DebugGrid(s.Screen)...)
	}
	if !s.Status.InReplay {
		return cmds
	}

	lay := ComputeLayout(s.Screen, cfg.Fractions)
	for _, el := range Elements {
		cmds = append(cmds, renderElement(el, lay, s)...)
	}

	centerX := s.Screen.W * 0.5
	if cfg.ShowTitle {
		title := s.Title
		if title == "" {
			title = DefaultTitle
		}
		cmds = append(cmds, text(title, centerX, 0))
	}

	if cfg.ShowHotkeyReminders {
		keys := s.Keys
		if keys.Settings == "" {
			keys.Settings = DefaultKeys().Settings
		}
		if keys.Analysis == "" {
			keys.Analysis = DefaultKeys().Analysis
		}
		settings := fmt.Sprintf("press %s to toggle settings window", keys.Settings)

		if !s.HasAnalysis() {
			first := fmt.Sprintf("press %s to analyze replay", keys.Analysis)
			if s.Status.Busy {
				first = "analyzing..."
			}
			cmds = append(cmds,
				text(first, centerX, s.Screen.H*reminderTopFrac),
				text(settings, centerX, s.Screen.H*reminderSettingsFrac),
			)
		} else {
			y := s.Screen.H * reminderSettingsFrac
			if cfg.ShowMainEval {
				y = s.Screen.H * reminderBelowChart
			}
			cmds = append(cmds, text(settings, centerX, y))
		}
	}
	return cmds
}

func renderElement(el ElementKind, lay Layout, s Scene) []Command {
	switch el {
	case AdvantageBars:
		if !s.Config.ShowTopBars {
			return nil
		}
		return RenderBars(lay.LeftBar, lay.RightBar, s.Series, s.Playhead, s.Config.BarsOptions())
	case ScrollingChart:
		if !s.Config.ShowMainEval {
			return nil
		}
		return RenderChart(lay.Main, s.Series, s.Playhead, s.Config.ChartOptions())
	default:
		return nil
	}
}

// DebugGrid draws lines at every 1% of the screen on both axes, with every
// tenth line brighter.
func DebugGrid(screen Size) []Command {
	cmds := make([]Command, 0, 2*101)
	for i := 0; i <= 100; i++ {
		c := ColorDebugMinor
		if i%10 == 0 {
			c = ColorDebugMajor
		}
		x := screen.W * float64(i) / 100
		cmds = append(cmds, Command{Kind: Line, Rect: Rect{X: x, Y: 0, W: 1, H: screen.H}, Color: c})
	}
	for i := 0; i <= 100; i++ {
		c := ColorDebugMinor
		if i%10 == 0 {
			c = ColorDebugMajor
		}
		y := screen.H * float64(i) / 100
		cmds = append(cmds, Command{Kind: Line, Rect: Rect{X: 0, Y: y, W: screen.W, H: 1}, Color: c})
	}
	return cmds
}

func text(s string, centerX, y float64) Command {
	return Command{
		Kind:  Text,
		Rect:  Rect{X: centerX, Y: y},
		Color: ColorWhite,
		Text:  s,
		Align: AlignCenter,
	}
}
