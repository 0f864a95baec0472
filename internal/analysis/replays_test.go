package analysis

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestListReplays(t *testing.T) {
	root := t.TempDir()
	epic := filepath.Join(root, "DemosEpic")
	steam := filepath.Join(root, "Demos")

	touch(t, filepath.Join(epic, "A.replay"))
	touch(t, filepath.Join(steam, "A.replay"))
	touch(t, filepath.Join(steam, "B.replay"))
	touch(t, filepath.Join(steam, "notes.txt"))

	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(filepath.Join(epic, "A.replay"), old, old); err != nil {
		t.Fatal(err)
	}

	replays, err := ListReplays([]string{epic, steam, filepath.Join(root, "missing")})
	if err != nil {
		t.Fatalf("ListReplays: %v", err)
	}
	if len(replays) != 2 {
		t.Fatalf("expected 2 replays, got %d", len(replays))
	}
	if replays[0].ID != "B" {
		t.Errorf("expected newest replay first, got %q", replays[0].ID)
	}
	if replays[1].Path != filepath.Join(epic, "A.replay") {
		t.Errorf("expected first folder to win for A, got %q", replays[1].Path)
	}
}
