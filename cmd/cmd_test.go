package cmd

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tonhe/replaylens/internal/config"
	"github.com/tonhe/replaylens/internal/overlay"
)

// isolate points every config and data path at a temp dir and resets the
// package flags.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv(config.DataDirEnv, filepath.Join(dir, "data"))
	configPath = ""
	sceneFrame, sceneTotal, scenePreset, sceneCSV, sceneBars = 0, 0, "", "", false
	return dir
}

func writeCSV(t *testing.T, dir string, rows int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("eval,unused,imminence\n")
	for i := 0; i < rows; i++ {
		b.WriteString("0.75,0,0.25\n")
	}
	path := filepath.Join(dir, "R1.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("writing csv: %v", err)
	}
	return path
}

func TestLoadSceneFromCSV(t *testing.T) {
	dir := isolate(t)
	sceneCSV = writeCSV(t, dir, 40)
	sceneFrame = 12
	sceneBars = true

	e, err := loadEnv()
	if err != nil {
		t.Fatalf("loadEnv: %v", err)
	}
	s, err := loadScene(e, "R1", overlay.Size{W: 200, H: 100})
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	if len(s.Series) != 40 {
		t.Errorf("expected 40 samples, got %d", len(s.Series))
	}
	if s.Playhead.Frame != 12 || s.Playhead.Total != 40 {
		t.Errorf("expected playhead 12/40, got %+v", s.Playhead)
	}
	if !s.Config.ShowTopBars {
		t.Error("expected --bars to enable the advantage bars")
	}
	if s.Title != "R1" || !s.Status.InReplay {
		t.Errorf("unexpected scene header %q %+v", s.Title, s.Status)
	}
	if e.cfg.Overlay.ShowTopBars {
		t.Error("scene flags should not touch the loaded config")
	}
}

func TestLoadSceneMissingAnalysis(t *testing.T) {
	isolate(t)
	e, err := loadEnv()
	if err != nil {
		t.Fatalf("loadEnv: %v", err)
	}
	if _, err := loadScene(e, "nope", overlay.Size{W: 10, H: 10}); err == nil {
		t.Error("expected an error for a replay without analysis")
	}
}

func TestLoadScenePreset(t *testing.T) {
	dir := isolate(t)
	sceneCSV = writeCSV(t, dir, 5)
	scenePreset = "full"

	e, err := loadEnv()
	if err != nil {
		t.Fatalf("loadEnv: %v", err)
	}
	s, err := loadScene(e, "R1", overlay.Size{W: 10, H: 10})
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	if !s.Config.ShowTopBars || !s.Config.ShowMainEval {
		t.Errorf("expected the full preset to show bars and chart, got %+v", s.Config)
	}
}

func TestModelsUseNotReady(t *testing.T) {
	isolate(t)
	if err := runModelsUse(modelsUseCmd, []string{"mymodel"}); err != nil {
		t.Fatalf("runModelsUse: %v", err)
	}
	e, err := loadEnv()
	if err != nil {
		t.Fatalf("loadEnv: %v", err)
	}
	if e.cfg.Model != "mymodel" {
		t.Errorf("expected model mymodel, got %q", e.cfg.Model)
	}
	if e.cfg.ModelReady {
		t.Error("expected a missing model to be saved as not ready")
	}
}

func TestModelsVerifyMissing(t *testing.T) {
	isolate(t)
	if err := runModelsVerify(modelsVerifyCmd, []string{"ghost"}); err == nil {
		t.Error("expected verify to fail for a missing model")
	}
}

func TestSnapshotWritesPNG(t *testing.T) {
	dir := isolate(t)
	sceneCSV = writeCSV(t, dir, 20)
	snapshotOut = filepath.Join(dir, "frame.png")
	snapshotWidth, snapshotHeight = 64, 32
	t.Cleanup(func() { snapshotOut = "" })

	if err := runSnapshot(snapshotCmd, []string{"R1"}); err != nil {
		t.Fatalf("runSnapshot: %v", err)
	}
	f, err := os.Open(snapshotOut)
	if err != nil {
		t.Fatalf("opening snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 32 {
		t.Errorf("expected 64x32, got %v", img.Bounds())
	}
}
