package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tonhe/replaylens/internal/dataset"
	"github.com/tonhe/replaylens/internal/overlay"
	"github.com/tonhe/replaylens/internal/preset"
)

// Flags shared by render and snapshot.
var (
	sceneFrame  int
	sceneTotal  int
	scenePreset string
	sceneCSV    string
	sceneBars   bool
)

func addSceneFlags(c *cobra.Command) {
	c.Flags().IntVarP(&sceneFrame, "frame", "f", 0, "frame to draw")
	c.Flags().IntVar(&sceneTotal, "frames", 0, "replay length in frames (default: analysis length)")
	c.Flags().StringVar(&scenePreset, "preset", "", "layout preset to apply")
	c.Flags().StringVar(&sceneCSV, "csv", "", "read this analysis file instead of the model's")
	c.Flags().BoolVar(&sceneBars, "bars", false, "force the advantage bars on")
}

// loadScene builds the overlay scene for one replay frame from the saved
// settings and the replay's analysis file.
func loadScene(e *env, replayID string, screen overlay.Size) (overlay.Scene, error) {
	cfg := *e.cfg
	if scenePreset != "" {
		p, err := preset.Find(e.presetsDir, scenePreset)
		if err != nil {
			return overlay.Scene{}, err
		}
		p.Apply(&cfg)
	}
	if sceneBars {
		cfg.Overlay.ShowTopBars = true
	}

	path := sceneCSV
	if path == "" {
		path = e.models.AnalysisPath(cfg.Model, replayID)
	}
	ds, err := dataset.ParseFile(path, cfg.CSVHeader)
	if err != nil {
		return overlay.Scene{}, errors.Wrapf(err, "loading analysis of %s", replayID)
	}

	total := sceneTotal
	if total <= 0 {
		total = ds.Frames()
	}
	return overlay.Scene{
		Screen:   screen,
		Series:   ds.Column(dataset.ColumnWinProbability),
		Playhead: overlay.Playhead{Frame: sceneFrame, Total: total},
		Config:   cfg.Display(),
		Status:   overlay.Status{InReplay: true},
		Keys:     cfg.OverlayKeys(),
		Title:    replayID,
	}, nil
}
