package analysis

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Runner invokes a model applet as `applet <replay> <output>`.
type Runner struct {
	// StderrPath, when set, overrides where non-empty applet stderr is saved.
	// By default it goes next to the applet.
	StderrPath string
}

// Run executes the applet and waits for it. Success means a zero exit code
// and an existing output file. Cancelling ctx kills the applet.
func (r *Runner) Run(ctx context.Context, applet, replayPath, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return errors.Wrap(err, "creating analysis dir")
	}

	cmd := exec.CommandContext(ctx, applet, replayPath, outPath)
	cmd.Dir = filepath.Dir(applet)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	fields := log.Fields{"applet": applet, "replay": replayPath, "output": outPath}
	log.WithFields(fields).Info("starting applet")

	runErr := cmd.Run()

	if stderr.Len() > 0 {
		path := r.StderrPath
		if path == "" {
			path = filepath.Join(filepath.Dir(applet), stderrLogName)
		}
		if err := os.WriteFile(path, stderr.Bytes(), 0644); err != nil {
			log.WithError(err).Warn("could not save applet stderr")
		} else {
			log.WithField("path", path).Info("saved applet stderr")
		}
	}

	if runErr != nil {
		if ctx.Err() != nil {
			return errors.Wrap(ctx.Err(), "applet cancelled")
		}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			log.WithFields(fields).WithField("code", exitErr.ExitCode()).Warn("applet failed")
			return errors.Errorf("applet exited with code %d", exitErr.ExitCode())
		}
		return errors.Wrap(runErr, "starting applet")
	}

	if !isFile(outPath) {
		return ErrNoOutput
	}
	log.WithFields(fields).Info("analysis written")
	return nil
}
