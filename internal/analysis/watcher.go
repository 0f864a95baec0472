package analysis

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Change reports an analysis file appearing, changing or going away.
type Change struct {
	ReplayID string
	Path     string
	Removed  bool
}

// Watcher follows an analysis folder so files produced or deleted outside
// the app are picked up.
type Watcher struct {
	fw      *fsnotify.Watcher
	dir     string
	changes chan Change
}

// NewWatcher creates the folder if needed and starts watching it.
func NewWatcher(dir string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "creating analysis dir")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating file watcher")
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watching %s", dir)
	}
	return &Watcher{fw: fw, dir: dir, changes: make(chan Change, 16)}, nil
}

// Dir returns the watched folder.
func (w *Watcher) Dir() string { return w.dir }

// Changes delivers analysis file changes. It is closed when Run returns.
func (w *Watcher) Changes() <-chan Change { return w.changes }

// Run translates file system events until ctx is done or the watcher is
// closed.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.changes)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			c, ok := toChange(ev)
			if !ok {
				continue
			}
			select {
			case w.changes <- c:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("analysis watcher")
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func toChange(ev fsnotify.Event) (Change, bool) {
	name := filepath.Base(ev.Name)
	if filepath.Ext(name) != analysisExt {
		return Change{}, false
	}
	c := Change{ReplayID: strings.TrimSuffix(name, analysisExt), Path: ev.Name}
	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		c.Removed = true
	case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
	default:
		return Change{}, false
	}
	return c, true
}
