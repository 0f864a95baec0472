package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tonhe/replaylens/internal/overlay"
)

var (
	snapshotOut    string
	snapshotWidth  int
	snapshotHeight int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot REPLAY_ID",
	Short: "Save one overlay frame as a PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshot,
}

func init() {
	addSceneFlags(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "", "output file (default: <replay>-<frame>.png)")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 1920, "image width in pixels")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", 1080, "image height in pixels")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	cliLogging(e.cfg.LogLevel)
	if snapshotWidth <= 0 || snapshotHeight <= 0 {
		return errors.New("width and height must be positive")
	}

	r := overlay.NewRaster(snapshotWidth, snapshotHeight)
	scene, err := loadScene(e, args[0], r.Size())
	if err != nil {
		return err
	}
	overlay.Replay(r, overlay.Compose(scene))

	out := snapshotOut
	if out == "" {
		out = fmt.Sprintf("%s-%d.png", args[0], sceneFrame)
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "creating snapshot")
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "writing snapshot")
	}
	fmt.Printf("Wrote %s (%dx%d, frame %d).\n", out, snapshotWidth, snapshotHeight, sceneFrame)
	return nil
}
