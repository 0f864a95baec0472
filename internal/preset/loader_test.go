package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/tonhe/replaylens/internal/config"
	"github.com/tonhe/replaylens/internal/overlay"
)

const testPresetTOML = `
name = "Streamer"
description = "bars only"
show_topbars = true
show_maineval = false
past_frames = 60
future_frames = 30

[layout]
bar_width = 0.3
`

func TestLoadPreset(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "streamer.toml")
	os.WriteFile(path, []byte(testPresetTOML), 0644)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Name != "Streamer" {
		t.Errorf("expected name 'Streamer', got %q", p.Name)
	}
	if !p.ShowTopBars || p.ShowMainEval {
		t.Errorf("expected bars only, got %+v", p)
	}
	if p.Layout.BarWidth != 0.3 {
		t.Errorf("expected bar_width 0.3, got %v", p.Layout.BarWidth)
	}
	if p.Layout.MainTop != overlay.DefaultFractions().MainTop {
		t.Errorf("expected default main_top, got %v", p.Layout.MainTop)
	}
}

func TestLoadPresetNameFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiet.toml")
	os.WriteFile(path, []byte("show_maineval = true\n"), 0644)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Name != "quiet" {
		t.Errorf("expected name from file 'quiet', got %q", p.Name)
	}
}

func TestSaveAndList(t *testing.T) {
	tmp := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Overlay.SmoothingWindow = 5

	if err := Save(FromConfig("mine", cfg), Path(tmp, "mine")); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	os.WriteFile(filepath.Join(tmp, "notes.txt"), []byte("x"), 0644)

	names, err := List(tmp)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(names) != 1 || names[0] != "mine" {
		t.Errorf("expected [mine], got %v", names)
	}

	p, err := Load(Path(tmp, "mine"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.SmoothingWindow != 5 {
		t.Errorf("expected smoothing 5, got %d", p.SmoothingWindow)
	}
}

func TestListMissingDir(t *testing.T) {
	names, err := List(filepath.Join(t.TempDir(), "none"))
	if err != nil || len(names) != 0 {
		t.Errorf("expected empty list, got %v err=%v", names, err)
	}
}

func TestFindFallsBackToBuiltin(t *testing.T) {
	tmp := t.TempDir()
	p, err := Find(tmp, "full")
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if !p.ShowTopBars {
		t.Error("expected builtin full preset to show bars")
	}

	if _, err := Find(tmp, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyClamps(t *testing.T) {
	cfg := config.DefaultConfig()
	p := &Preset{ShowTopBars: true, PastFrames: 9000, Layout: overlay.DefaultFractions()}
	p.Apply(cfg)
	if !cfg.Overlay.ShowTopBars {
		t.Error("expected bars enabled")
	}
	if cfg.Overlay.PastFrames != config.MaxFrames {
		t.Errorf("expected past frames clamped to %d, got %d", config.MaxFrames, cfg.Overlay.PastFrames)
	}
}

func TestBuiltinNames(t *testing.T) {
	names := BuiltinNames()
	if len(names) != 3 || names[0] != "default" {
		t.Errorf("unexpected builtin names %v", names)
	}
}
