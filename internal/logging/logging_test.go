package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestConfigureLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(&buf, "warn")
	defer Configure(os.Stderr, "info")

	log.Info("hidden")
	log.WithField("replay", "abc").Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "replay=abc") {
		t.Errorf("expected warn message with fields, got %q", out)
	}
}

func TestConfigureUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(&buf, "chatty")
	defer Configure(os.Stderr, "info")

	if log.GetLevel() != log.InfoLevel {
		t.Errorf("expected info level fallback, got %v", log.GetLevel())
	}
}

func TestSetupWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "replaylens.log")
	c, err := Setup(path, "debug")
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	log.Debug("to file")
	Configure(os.Stderr, "info")
	c.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("expected message in log file, got %q", data)
	}
}
