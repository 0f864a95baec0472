package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error: %v", err)
	}
	if dir == "" {
		t.Fatal("GetConfigDir() returned empty string")
	}
	if filepath.Base(dir) != "replaylens" {
		t.Errorf("expected dir to end with 'replaylens', got %q", filepath.Base(dir))
	}
}

func TestGetConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG test not applicable on Windows")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error: %v", err)
	}
	expected := filepath.Join(tmp, "replaylens")
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}

func TestGetDataDir(t *testing.T) {
	t.Setenv(DataDirEnv, "")
	dir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir() error: %v", err)
	}
	if filepath.Base(dir) != "replaylens" {
		t.Errorf("expected dir to end with 'replaylens', got %q", filepath.Base(dir))
	}
}

func TestGetDataDirOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(DataDirEnv, tmp)

	dir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir() error: %v", err)
	}
	if dir != tmp {
		t.Errorf("expected %q, got %q", tmp, dir)
	}
	models, _ := GetModelsDir()
	if models != filepath.Join(tmp, "models") {
		t.Errorf("expected models under override, got %q", models)
	}
	logPath, _ := GetLogPath()
	if logPath != filepath.Join(tmp, "replaylens.log") {
		t.Errorf("unexpected log path %q", logPath)
	}
}

func TestPresetsDir(t *testing.T) {
	dir, err := GetPresetsDir()
	if err != nil {
		t.Fatalf("GetPresetsDir() error: %v", err)
	}
	if filepath.Base(dir) != "presets" {
		t.Errorf("expected dir to end with 'presets', got %q", filepath.Base(dir))
	}
}

func TestDefaultReplayDirsOrder(t *testing.T) {
	dirs := DefaultReplayDirs()
	if len(dirs) != 2 {
		t.Fatalf("expected 2 replay dirs, got %d", len(dirs))
	}
	if filepath.Base(dirs[0]) != "DemosEpic" || filepath.Base(dirs[1]) != "Demos" {
		t.Errorf("expected DemosEpic then Demos, got %v", dirs)
	}
}
