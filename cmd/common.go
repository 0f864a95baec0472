package cmd

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/tonhe/replaylens/internal/analysis"
	"github.com/tonhe/replaylens/internal/config"
	"github.com/tonhe/replaylens/internal/logging"
	"github.com/tonhe/replaylens/internal/storage"
)

// env is the resolved configuration shared by every command.
type env struct {
	cfg        *config.Config
	configPath string
	presetsDir string
	models     analysis.Models
}

// loadEnv resolves paths and loads the config, falling back to defaults
// when the file does not exist yet.
func loadEnv() (*env, error) {
	if err := config.EnsureDirs(); err != nil {
		return nil, errors.Wrap(err, "creating directories")
	}
	path := configPath
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	presets, err := config.GetPresetsDir()
	if err != nil {
		return nil, err
	}
	modelsDir, err := config.GetModelsDir()
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:        cfg,
		configPath: path,
		presetsDir: presets,
		models:     analysis.Models{Root: modelsDir},
	}, nil
}

// save writes the config back to where it was loaded from.
func (e *env) save() error {
	return config.SaveConfig(e.cfg, e.configPath)
}

func logPathFor() (string, error) {
	return config.GetLogPath()
}

// cliLogging sends log lines to stderr for one-shot commands.
func cliLogging(level string) {
	logging.Configure(os.Stderr, level)
}

func openCatalog() (*storage.DB, error) {
	path, err := config.GetCatalogPath()
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}

// newManager builds the analysis manager and, when a catalog is open,
// records every result in it.
func newManager(e *env, catalog *storage.DB) *analysis.Manager {
	runner := &analysis.Runner{StderrPath: e.models.StderrLogPath(e.cfg.Model)}
	mgr := analysis.NewManager(e.models, runner, e.cfg.MaxHistory, e.cfg.AnalysisTimeout)
	if catalog != nil {
		mgr.OnResult = func(r analysis.Result) {
			if _, err := catalog.InsertRun(storage.RunFromResult(r)); err != nil {
				log.WithError(err).Warn("recording analysis run")
			}
		}
	}
	return mgr
}
