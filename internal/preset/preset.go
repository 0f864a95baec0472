package preset

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/tonhe/replaylens/internal/config"
	"github.com/tonhe/replaylens/internal/overlay"
)

// ErrNotFound is returned when no preset has the requested name.
var ErrNotFound = errors.New("preset not found")

// Preset is a named overlay arrangement loaded from TOML.
type Preset struct {
	Name            string            `toml:"name"`
	Description     string            `toml:"description"`
	ShowTopBars     bool              `toml:"show_topbars"`
	ShowMainEval    bool              `toml:"show_maineval"`
	PastFrames      int               `toml:"past_frames"`
	FutureFrames    int               `toml:"future_frames"`
	SmoothingWindow int               `toml:"smoothing_window"`
	Layout          overlay.Fractions `toml:"layout"`
}

// FromConfig captures the current arrangement under name.
func FromConfig(name string, cfg *config.Config) *Preset {
	return &Preset{
		Name:            name,
		ShowTopBars:     cfg.Overlay.ShowTopBars,
		ShowMainEval:    cfg.Overlay.ShowMainEval,
		PastFrames:      cfg.Overlay.PastFrames,
		FutureFrames:    cfg.Overlay.FutureFrames,
		SmoothingWindow: cfg.Overlay.SmoothingWindow,
		Layout:          cfg.Layout,
	}
}

// Apply copies the preset onto cfg and re-clamps it.
func (p *Preset) Apply(cfg *config.Config) {
	cfg.Overlay.ShowTopBars = p.ShowTopBars
	cfg.Overlay.ShowMainEval = p.ShowMainEval
	cfg.Overlay.PastFrames = p.PastFrames
	cfg.Overlay.FutureFrames = p.FutureFrames
	cfg.Overlay.SmoothingWindow = p.SmoothingWindow
	cfg.Layout = p.Layout
	cfg.Sanitize()
}

var builtins = map[string]Preset{
	"default": {
		Name:         "default",
		Description:  "chart under the scoreboard",
		ShowMainEval: true,
		PastFrames:   overlay.DefaultPastFrames,
		FutureFrames: overlay.DefaultFutureFrames,
		Layout:       overlay.DefaultFractions(),
	},
	"full": {
		Name:         "full",
		Description:  "advantage bars and chart",
		ShowTopBars:  true,
		ShowMainEval: true,
		PastFrames:   overlay.DefaultPastFrames,
		FutureFrames: overlay.DefaultFutureFrames,
		Layout:       overlay.DefaultFractions(),
	},
	"lookback": {
		Name:            "lookback",
		Description:     "wide chart of the last ten seconds, smoothed",
		ShowMainEval:    true,
		PastFrames:      300,
		FutureFrames:    0,
		SmoothingWindow: 15,
		Layout: overlay.Fractions{
			BarWidth:   0.40,
			BarHeight:  0.07,
			MainWidth:  0.40,
			MainHeight: 0.16,
			MainTop:    0.098,
		},
	},
}

// Builtin returns a copy of a shipped preset.
func Builtin(name string) (*Preset, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return &p, nil
}

// BuiltinNames returns the shipped preset names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
