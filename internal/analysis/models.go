package analysis

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	internalDirName  = "_internal"
	analysisDirName  = "demoanalysis"
	stderrLogName    = "applet_stderr.log"
	analysisExt      = ".csv"
	replayExt        = ".replay"
	appletNameSuffix = "_applet"
)

// Models resolves the on-disk layout of installed models:
//
//	<root>/<model>/<model>_applet[.exe]
//	<root>/<model>/_internal/
//	<root>/<model>/demoanalysis/<replay id>.csv
type Models struct {
	Root string
}

// Dir returns the folder of the named model.
func (m Models) Dir(model string) string {
	return filepath.Join(m.Root, model)
}

// AppletPath returns the analysis executable of the named model.
func (m Models) AppletPath(model string) string {
	name := model + appletNameSuffix
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(m.Dir(model), name)
}

// InternalDir returns the applet's runtime folder.
func (m Models) InternalDir(model string) string {
	return filepath.Join(m.Dir(model), internalDirName)
}

// AnalysisDir returns the folder holding the model's analysis files.
func (m Models) AnalysisDir(model string) string {
	return filepath.Join(m.Dir(model), analysisDirName)
}

// AnalysisPath returns the analysis file for one replay.
func (m Models) AnalysisPath(model, replayID string) string {
	return filepath.Join(m.AnalysisDir(model), replayID+analysisExt)
}

// StderrLogPath returns where applet error output is saved.
func (m Models) StderrLogPath(model string) string {
	return filepath.Join(m.Dir(model), stderrLogName)
}

// InstallStatus describes what was found in a model folder.
type InstallStatus struct {
	Model       string
	HasDir      bool
	HasApplet   bool
	HasInternal bool
	Reason      string
}

// Ready reports whether the model can run.
func (s InstallStatus) Ready() bool {
	return s.HasDir && s.HasApplet && s.HasInternal
}

// Check inspects a model folder. The error wraps ErrModelNotInstalled with
// the first missing piece when the model cannot run.
func (m Models) Check(model string) (InstallStatus, error) {
	st := InstallStatus{Model: model}
	if err := validName(model); err != nil {
		st.Reason = err.Error()
		return st, err
	}

	st.HasDir = isDir(m.Dir(model))
	st.HasApplet = isFile(m.AppletPath(model))
	st.HasInternal = isDir(m.InternalDir(model))

	switch {
	case !st.HasDir:
		st.Reason = "model folder missing: " + m.Dir(model)
	case !st.HasApplet:
		st.Reason = "missing applet: " + m.AppletPath(model)
	case !st.HasInternal:
		st.Reason = "missing " + internalDirName + " folder: " + m.InternalDir(model)
	default:
		return st, nil
	}
	return st, errors.Wrap(ErrModelNotInstalled, st.Reason)
}

// List returns the names of all model folders, sorted. A missing root is
// not an error.
func (m Models) List() ([]string, error) {
	entries, err := os.ReadDir(m.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "listing models")
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && e.Name() != "" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// EnsureAnalysisDir creates the model's analysis folder.
func (m Models) EnsureAnalysisDir(model string) error {
	if err := validName(model); err != nil {
		return err
	}
	return os.MkdirAll(m.AnalysisDir(model), 0755)
}

// AnalysisFile is one generated analysis on disk.
type AnalysisFile struct {
	ReplayID string
	Path     string
	Size     int64
	ModTime  time.Time
}

// Analyses lists the model's analysis files, newest first.
func (m Models) Analyses(model string) ([]AnalysisFile, error) {
	if err := validName(model); err != nil {
		return nil, err
	}
	dir := m.AnalysisDir(model)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "listing analyses")
	}
	var files []AnalysisFile
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != analysisExt {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, AnalysisFile{
			ReplayID: strings.TrimSuffix(e.Name(), analysisExt),
			Path:     filepath.Join(dir, e.Name()),
			Size:     info.Size(),
			ModTime:  info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

// DeleteAnalysis removes the analysis file of one replay. It reports false
// when there was nothing to delete.
func (m Models) DeleteAnalysis(model, replayID string) (bool, error) {
	if err := validName(model); err != nil {
		return false, err
	}
	if err := validName(replayID); err != nil {
		return false, err
	}
	path := m.AnalysisPath(model, replayID)
	err := os.Remove(path)
	switch {
	case err == nil:
		log.WithField("path", path).Info("deleted analysis")
		return true, nil
	case os.IsNotExist(err):
		log.WithField("path", path).Info("no analysis to delete")
		return false, nil
	default:
		return false, errors.Wrapf(err, "deleting %s", path)
	}
}

// FindReplay searches dirs in order for <replayID>.replay. When no folder
// has it, the first folder's candidate path is returned with found false.
func FindReplay(dirs []string, replayID string) (path string, found bool) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, replayID+replayExt)
		if isFile(candidate) {
			return candidate, true
		}
	}
	if len(dirs) == 0 {
		return replayID + replayExt, false
	}
	return filepath.Join(dirs[0], replayID+replayExt), false
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
