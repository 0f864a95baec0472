package analysis

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Replay is a replay file found in one of the replay folders.
type Replay struct {
	ID      string
	Path    string
	ModTime time.Time
}

// ListReplays collects the replays of every folder, newest first. When the
// same id appears in several folders the earlier folder wins, matching
// FindReplay. Missing folders are skipped.
func ListReplays(dirs []string) ([]Replay, error) {
	seen := make(map[string]bool)
	var out []Replay
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "listing %s", dir)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != replayExt {
				continue
			}
			id := strings.TrimSuffix(e.Name(), replayExt)
			if seen[id] {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			seen[id] = true
			out = append(out, Replay{ID: id, Path: filepath.Join(dir, e.Name()), ModTime: info.ModTime()})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ModTime.After(out[j].ModTime)
	})
	return out, nil
}
