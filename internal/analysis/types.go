package analysis

import (
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrBusy is returned when a regeneration is requested while one runs.
	ErrBusy = errors.New("analysis already running")
	// ErrModelNotInstalled means the model folder lacks the applet or its
	// runtime folder.
	ErrModelNotInstalled = errors.New("model not installed")
	// ErrNoOutput means the applet exited cleanly without writing the file.
	ErrNoOutput = errors.New("applet produced no analysis file")
	// ErrInvalidName rejects model names and replay ids that are not plain
	// file names.
	ErrInvalidName = errors.New("invalid name")
)

// Request identifies one regeneration job.
type Request struct {
	Model      string
	ReplayID   string
	ReplayDirs []string
}

// Result is the outcome of a regeneration job. Err is nil on success, in
// which case Path holds the written analysis file.
type Result struct {
	Model      string
	ReplayID   string
	ReplayPath string
	Path       string
	Err        error
	Started    time.Time
	Duration   time.Duration
}

// OK reports whether the job produced an analysis file.
func (r Result) OK() bool {
	return r.Err == nil
}

// Reason is a one-line failure description, empty on success.
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
