// Package logging routes logrus output to a file; the terminal belongs to
// the UI.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Setup points the standard logrus logger at path with the given level. An
// unknown level falls back to info. The returned closer flushes the file.
func Setup(path, level string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrap(err, "creating log dir")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "opening log file")
	}
	Configure(f, level)
	return f, nil
}

// Configure sets the logrus output, formatter and level.
func Configure(w io.Writer, level string) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// Discard silences logging. Commands that print to the terminal use it when
// no log file is wanted.
func Discard() {
	log.SetOutput(io.Discard)
}
