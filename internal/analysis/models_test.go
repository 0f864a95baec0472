package analysis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestModelsLayout(t *testing.T) {
	m := Models{Root: "/data/models"}
	if got := m.AnalysisPath("rl", "ABC"); got != filepath.Join("/data/models", "rl", "demoanalysis", "ABC.csv") {
		t.Errorf("unexpected analysis path %q", got)
	}
	if got := m.InternalDir("rl"); got != filepath.Join("/data/models", "rl", "_internal") {
		t.Errorf("unexpected internal dir %q", got)
	}
	if got := m.StderrLogPath("rl"); filepath.Base(got) != "applet_stderr.log" {
		t.Errorf("unexpected stderr log %q", got)
	}
	if base := filepath.Base(m.AppletPath("rl")); base != "rl_applet" && base != "rl_applet.exe" {
		t.Errorf("unexpected applet name %q", base)
	}
}

func TestCheckReportsFirstMissingPiece(t *testing.T) {
	m := Models{Root: t.TempDir()}

	st, err := m.Check("rl")
	if !errors.Is(err, ErrModelNotInstalled) || st.HasDir {
		t.Fatalf("expected missing folder, got %+v err=%v", st, err)
	}

	if err := os.MkdirAll(m.Dir("rl"), 0755); err != nil {
		t.Fatal(err)
	}
	st, _ = m.Check("rl")
	if !st.HasDir || st.HasApplet || st.Ready() {
		t.Errorf("expected folder without applet, got %+v", st)
	}

	touch(t, m.AppletPath("rl"))
	st, err = m.Check("rl")
	if st.HasInternal || err == nil {
		t.Errorf("expected missing _internal, got %+v err=%v", st, err)
	}

	if err := os.MkdirAll(m.InternalDir("rl"), 0755); err != nil {
		t.Fatal(err)
	}
	st, err = m.Check("rl")
	if err != nil || !st.Ready() {
		t.Errorf("expected ready model, got %+v err=%v", st, err)
	}
}

func TestCheckRejectsPathNames(t *testing.T) {
	m := Models{Root: t.TempDir()}
	for _, name := range []string{"", "..", "a/b", `a\b`} {
		if _, err := m.Check(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Check(%q): expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestListModelsSorted(t *testing.T) {
	m := Models{Root: t.TempDir()}
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := os.MkdirAll(m.Dir(name), 0755); err != nil {
			t.Fatal(err)
		}
	}
	touch(t, filepath.Join(m.Root, "notes.txt"))

	names, err := m.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
		}
	}
}

func TestListModelsMissingRoot(t *testing.T) {
	m := Models{Root: filepath.Join(t.TempDir(), "none")}
	names, err := m.List()
	if err != nil || len(names) != 0 {
		t.Errorf("expected empty list, got %v err=%v", names, err)
	}
}

func TestDeleteAnalysis(t *testing.T) {
	m := Models{Root: t.TempDir()}
	touch(t, m.AnalysisPath("rl", "R1"))

	removed, err := m.DeleteAnalysis("rl", "R1")
	if err != nil || !removed {
		t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
	}
	removed, err = m.DeleteAnalysis("rl", "R1")
	if err != nil || removed {
		t.Errorf("expected nothing to delete, got removed=%v err=%v", removed, err)
	}
	if _, err := m.DeleteAnalysis("rl", "../config"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestAnalysesListsCSVOnly(t *testing.T) {
	m := Models{Root: t.TempDir()}
	touch(t, m.AnalysisPath("rl", "A"))
	touch(t, m.AnalysisPath("rl", "B"))
	touch(t, filepath.Join(m.AnalysisDir("rl"), "readme.md"))

	files, err := m.Analyses("rl")
	if err != nil {
		t.Fatalf("Analyses() error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(files))
	}
	for _, f := range files {
		if f.ReplayID != "A" && f.ReplayID != "B" {
			t.Errorf("unexpected replay id %q", f.ReplayID)
		}
	}
}

func TestFindReplayOrder(t *testing.T) {
	root := t.TempDir()
	epic := filepath.Join(root, "DemosEpic")
	steam := filepath.Join(root, "Demos")

	path, found := FindReplay([]string{epic, steam}, "R9")
	if found || path != filepath.Join(epic, "R9.replay") {
		t.Errorf("expected default candidate in first dir, got %q found=%v", path, found)
	}

	touch(t, filepath.Join(steam, "R9.replay"))
	path, found = FindReplay([]string{epic, steam}, "R9")
	if !found || path != filepath.Join(steam, "R9.replay") {
		t.Errorf("expected steam replay, got %q found=%v", path, found)
	}

	touch(t, filepath.Join(epic, "R9.replay"))
	path, _ = FindReplay([]string{epic, steam}, "R9")
	if path != filepath.Join(epic, "R9.replay") {
		t.Errorf("expected first folder to win, got %q", path)
	}
}
