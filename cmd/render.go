package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tonhe/replaylens/internal/overlay"
	"github.com/tonhe/replaylens/tui/components"
	"github.com/tonhe/replaylens/tui/styles"
)

var renderCols, renderRows int

var renderCmd = &cobra.Command{
	Use:   "render REPLAY_ID",
	Short: "Draw one overlay frame to the terminal",
	Long: `Draws the overlay for a single frame of a replay with terminal half
blocks and exits. The size defaults to the terminal size.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	addSceneFlags(renderCmd)
	renderCmd.Flags().IntVar(&renderCols, "cols", 0, "width in cells (default: terminal width)")
	renderCmd.Flags().IntVar(&renderRows, "rows", 0, "height in cells (default: terminal height)")
}

func runRender(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	cliLogging(e.cfg.LogLevel)

	cols, rows := renderCols, renderRows
	if cols <= 0 || rows <= 0 {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			w, h = 80, 24
		}
		if cols <= 0 {
			cols = w
		}
		if rows <= 0 {
			rows = h - 1
		}
	}

	theme := styles.Resolve(e.cfg.Theme)
	canvas := components.NewCanvas(cols, rows, theme.Base00)
	scene, err := loadScene(e, args[0], canvas.Size())
	if err != nil {
		return err
	}
	overlay.Replay(canvas, overlay.Compose(scene))
	fmt.Println(canvas.Render())
	return nil
}
