package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/tonhe/replaylens/internal/overlay"
)

// Limits applied by Sanitize.
const (
	MaxFrames = 5000
	MaxAlpha  = 255
)

// OverlayConfig holds the overlay display settings.
type OverlayConfig struct {
	Enabled             bool `toml:"enabled"`
	ShowTopBars         bool `toml:"show_topbars"`
	ShowMainEval        bool `toml:"show_maineval"`
	ShowMainBackground  bool `toml:"show_mainbg"`
	ShowTitle           bool `toml:"show_title"`
	ShowHotkeyReminders bool `toml:"show_hotkey_reminders"`
	DebugGrid           bool `toml:"debug_grid"`
	OpenWindowOnReplay  bool `toml:"open_window_on_replay"`
	MainEvalAlpha       int  `toml:"maineval_alpha"`
	BarBackgroundAlpha  int  `toml:"bar_background_alpha"`
	PastFrames          int  `toml:"past_frames"`
	FutureFrames        int  `toml:"future_frames"`
	SmoothingWindow     int  `toml:"smoothing_window"`
}

// KeysConfig holds the user-configurable hotkeys.
type KeysConfig struct {
	Settings string `toml:"settings"`
	Analysis string `toml:"analysis"`
}

// DefaultKeys returns the stock Z / X bindings.
func DefaultKeys() KeysConfig {
	return KeysConfig{Settings: "Z", Analysis: "X"}
}

type Config struct {
	Theme      string `toml:"theme"`
	LogLevel   string `toml:"log_level"`
	Model      string `toml:"model"`
	ModelReady bool   `toml:"model_ready"`
	// ReplayDirs are searched in order for <replay id>.replay.
	ReplayDirs []string `toml:"replay_dirs"`
	CSVHeader  bool     `toml:"csv_header"`
	MaxHistory int      `toml:"max_history"`

	AnalysisTimeout    time.Duration `toml:"-"`
	AnalysisTimeoutStr string        `toml:"analysis_timeout"`

	Overlay OverlayConfig     `toml:"overlay"`
	Layout  overlay.Fractions `toml:"layout"`
	Keys    KeysConfig        `toml:"keys"`
}

func DefaultConfig() *Config {
	d := overlay.DefaultDisplayConfig()
	return &Config{
		Theme:              "solarized-dark",
		LogLevel:           "info",
		Model:              "default",
		ReplayDirs:         DefaultReplayDirs(),
		CSVHeader:          true,
		MaxHistory:         50,
		AnalysisTimeout:    10 * time.Minute,
		AnalysisTimeoutStr: "10m0s",
		Overlay: OverlayConfig{
			Enabled:             d.Enabled,
			ShowTopBars:         d.ShowTopBars,
			ShowMainEval:        d.ShowMainEval,
			ShowMainBackground:  d.ShowMainBackground,
			ShowTitle:           d.ShowTitle,
			ShowHotkeyReminders: d.ShowHotkeyReminders,
			DebugGrid:           d.DebugGrid,
			OpenWindowOnReplay:  true,
			MainEvalAlpha:       d.MainEvalAlpha,
			BarBackgroundAlpha:  d.BarBackgroundAlpha,
			PastFrames:          d.PastFrames,
			FutureFrames:        d.FutureFrames,
			SmoothingWindow:     d.SmoothingWindow,
		},
		Layout: overlay.DefaultFractions(),
		Keys:   DefaultKeys(),
	}
}

// DefaultReplayDirs returns the game's replay folders, Epic first.
func DefaultReplayDirs() []string {
	docs, err := documentsDir()
	if err != nil {
		return nil
	}
	base := filepath.Join(docs, "My Games", "Rocket League", "TAGame")
	return []string{filepath.Join(base, "DemosEpic"), filepath.Join(base, "Demos")}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "reading config")
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if cfg.AnalysisTimeoutStr != "" {
		d, err := time.ParseDuration(cfg.AnalysisTimeoutStr)
		if err != nil {
			log.WithError(err).WithField("value", cfg.AnalysisTimeoutStr).Warn("invalid analysis_timeout, using default")
		} else {
			cfg.AnalysisTimeout = d
		}
	}
	cfg.Sanitize()
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	cfg.AnalysisTimeoutStr = cfg.AnalysisTimeout.String()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "creating config dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating config")
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// Sanitize clamps every numeric setting into its valid range and fills in
// empty names with their defaults.
func (c *Config) Sanitize() {
	o := &c.Overlay
	o.PastFrames = clampInt(o.PastFrames, 0, MaxFrames)
	o.FutureFrames = clampInt(o.FutureFrames, 0, MaxFrames)
	o.SmoothingWindow = clampInt(o.SmoothingWindow, 0, MaxFrames)
	o.MainEvalAlpha = clampInt(o.MainEvalAlpha, 0, MaxAlpha)
	o.BarBackgroundAlpha = clampInt(o.BarBackgroundAlpha, 0, MaxAlpha)

	l := &c.Layout
	l.BarWidth = clampFrac(l.BarWidth)
	l.BarHeight = clampFrac(l.BarHeight)
	l.MainWidth = clampFrac(l.MainWidth)
	l.MainHeight = clampFrac(l.MainHeight)
	l.MainTop = clampFrac(l.MainTop)

	if c.Model == "" {
		c.Model = "default"
	}
	if c.Keys.Settings == "" {
		c.Keys.Settings = DefaultKeys().Settings
	}
	if c.Keys.Analysis == "" {
		c.Keys.Analysis = DefaultKeys().Analysis
	}
	if c.MaxHistory <= 0 {
		c.MaxHistory = 50
	}
	if c.AnalysisTimeout <= 0 {
		c.AnalysisTimeout = 10 * time.Minute
	}
}

// Display converts the settings to the overlay's view.
func (c *Config) Display() overlay.DisplayConfig {
	o := c.Overlay
	return overlay.DisplayConfig{
		Enabled:             o.Enabled,
		ShowTopBars:         o.ShowTopBars,
		ShowMainEval:        o.ShowMainEval,
		ShowMainBackground:  o.ShowMainBackground,
		ShowTitle:           o.ShowTitle,
		ShowHotkeyReminders: o.ShowHotkeyReminders,
		DebugGrid:           o.DebugGrid,
		MainEvalAlpha:       o.MainEvalAlpha,
		BarBackgroundAlpha:  o.BarBackgroundAlpha,
		PastFrames:          o.PastFrames,
		FutureFrames:        o.FutureFrames,
		SmoothingWindow:     o.SmoothingWindow,
		Fractions:           c.Layout,
	}
}

// OverlayKeys returns the hotkey names shown in overlay reminders.
func (c *Config) OverlayKeys() overlay.Keys {
	return overlay.Keys{Settings: c.Keys.Settings, Analysis: c.Keys.Analysis}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFrac(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
