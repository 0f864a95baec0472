package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tonhe/replaylens/internal/analysis"
	"github.com/tonhe/replaylens/internal/dataset"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze REPLAY_ID...",
	Short: "Generate analysis files with the configured model",
	Long: `Runs the model applet once per replay id, one at a time, and records
each attempt in the catalog. Interrupting the command kills the applet.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var analyzeModel string

func init() {
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "model to run (default: configured model)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	cliLogging(e.cfg.LogLevel)
	if analyzeModel != "" {
		e.cfg.Model = analyzeModel
	}

	catalog, err := openCatalog()
	if err != nil {
		log.WithError(err).Warn("catalog unavailable")
	} else {
		defer catalog.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mgr := newManager(e, catalog)
	var failed int
	for _, id := range args {
		res := mgr.Run(ctx, analysis.Request{Model: e.cfg.Model, ReplayID: id, ReplayDirs: e.cfg.ReplayDirs})
		if !res.OK() {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %s\n", id, res.Reason())
			if ctx.Err() != nil {
				break
			}
			continue
		}
		ds, err := dataset.ParseFile(res.Path, e.cfg.CSVHeader)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", id, err)
			continue
		}
		fmt.Printf("%s: %d frames in %s (%s)\n", id, ds.Frames(), res.Duration.Round(1e6), res.Path)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d analyses failed", failed, len(args))
	}
	return nil
}
