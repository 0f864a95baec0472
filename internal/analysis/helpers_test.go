package analysis

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	scriptOK       = "#!/bin/sh\necho \"loading $1\" >&2\nprintf 'win,x,imminence\\n0.5,0,0.1\\n' > \"$2\"\n"
	scriptFail     = "#!/bin/sh\necho boom >&2\nexit 3\n"
	scriptNoOutput = "#!/bin/sh\nexit 0\n"
	scriptSlow     = "#!/bin/sh\nsleep 1\nprintf 'h\\n0.5\\n' > \"$2\"\n"
)

// installModel lays out a runnable model whose applet is the given shell
// script.
func installModel(t *testing.T, m Models, model, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell applets not supported on Windows")
	}
	if err := os.MkdirAll(m.InternalDir(model), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(m.AppletPath(model), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}
