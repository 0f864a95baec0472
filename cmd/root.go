package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tonhe/replaylens/internal/dataset"
	"github.com/tonhe/replaylens/internal/logging"
	"github.com/tonhe/replaylens/internal/preset"
	"github.com/tonhe/replaylens/tui"
)

// version is overridden at build time with -ldflags.
var version = "0.1.0"

var (
	configPath string

	tuiReplay string
	tuiFrames int
	tuiModel  string
	tuiTheme  string
	tuiPreset string
)

var rootCmd = &cobra.Command{
	Use:   "replaylens",
	Short: "Replay analysis overlay",
	Long: `replaylens plays back a replay timeline in the terminal and draws the
win probability overlay from the replay's analysis file. Analyses are
generated by an external model applet.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: platform config dir)")

	rootCmd.Flags().StringVar(&tuiReplay, "replay", "", "open this replay id immediately")
	rootCmd.Flags().IntVar(&tuiFrames, "frames", 0, "replay length in frames (default: analysis length)")
	rootCmd.Flags().StringVar(&tuiModel, "model", "", "model to use for this session")
	rootCmd.Flags().StringVar(&tuiTheme, "theme", "", "theme override for this session")
	rootCmd.Flags().StringVar(&tuiPreset, "preset", "", "layout preset to apply for this session")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(analysesCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(versionCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	cfg := e.cfg

	logPath, err := logPathFor()
	if err != nil {
		return err
	}
	closer, err := logging.Setup(logPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	if tuiModel != "" {
		cfg.Model = tuiModel
		st, _ := e.models.Check(tuiModel)
		cfg.ModelReady = st.Ready()
	}
	if tuiTheme != "" {
		if !knownTheme(tuiTheme) {
			return errors.Errorf("unknown theme %q (run 'replaylens themes')", tuiTheme)
		}
		cfg.Theme = tuiTheme
	}
	if tuiPreset != "" {
		p, err := preset.Find(e.presetsDir, tuiPreset)
		if err != nil {
			return err
		}
		p.Apply(cfg)
	}

	catalog, err := openCatalog()
	if err != nil {
		log.WithError(err).Warn("catalog unavailable")
	} else {
		defer catalog.Close()
	}

	mgr := newManager(e, catalog)
	model := tui.NewAppModel(tui.Options{
		Config:     cfg,
		ConfigPath: e.configPath,
		PresetsDir: e.presetsDir,
		Manager:    mgr,
		Holder:     &dataset.Holder{},
		Catalog:    catalog,
		Version:    version,
		Replay:     tuiReplay,
		Frames:     tuiFrames,
	})

	log.WithFields(log.Fields{"model": cfg.Model, "version": version}).Info("starting")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "running ui")
	}
	return nil
}
