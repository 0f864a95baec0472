package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/tonhe/replaylens/tui/components"
)

var analysesCmd = &cobra.Command{
	Use:   "analyses",
	Short: "Manage generated analysis files",
}

var analysesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List analysis files of the configured model",
	Args:  cobra.NoArgs,
	RunE:  runAnalysesList,
}

var analysesHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded analysis runs",
	Args:  cobra.NoArgs,
	RunE:  runAnalysesHistory,
}

var analysesDeleteCmd = &cobra.Command{
	Use:   "delete REPLAY_ID",
	Short: "Delete a replay's analysis file and its run history",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalysesDelete,
}

var historyLimit int

func init() {
	analysesHistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show")

	analysesCmd.AddCommand(analysesListCmd)
	analysesCmd.AddCommand(analysesHistoryCmd)
	analysesCmd.AddCommand(analysesDeleteCmd)
}

func runAnalysesList(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	files, err := e.models.Analyses(e.cfg.Model)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("No analyses for model %q.\n", e.cfg.Model)
		return nil
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithConfig(tablewriter.Config{
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
		}),
	)
	catalog, err := openCatalog()
	if err == nil {
		defer catalog.Close()
	}

	table.Header("Replay", "Size", "Modified", "Generated in")
	for _, f := range files {
		took := "-"
		if catalog != nil {
			if run, err := catalog.LatestRun(e.cfg.Model, f.ReplayID); err == nil && run.OK {
				took = run.Duration.Round(time.Millisecond).String()
			}
		}
		table.Append(f.ReplayID, components.FormatBytes(f.Size), f.ModTime.Format(time.DateTime), took)
	}
	return table.Render()
}

func runAnalysesHistory(cmd *cobra.Command, args []string) error {
	catalog, err := openCatalog()
	if err != nil {
		return err
	}
	defer catalog.Close()

	runs, err := catalog.ListRuns(historyLimit)
	if err != nil {
		return err
	}
	ok, failed, err := catalog.CountRuns()
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithConfig(tablewriter.Config{
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
		}),
	)
	table.Header("Started", "Model", "Replay", "Result", "Took")
	for _, r := range runs {
		result := "ok"
		if !r.OK {
			result = r.Reason
		}
		table.Append(r.StartedAt.Local().Format(time.DateTime), r.Model, r.ReplayID, result, r.Duration.Round(time.Millisecond).String())
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("%d succeeded, %d failed\n", ok, failed)
	return nil
}

func runAnalysesDelete(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	id := args[0]
	removed, err := e.models.DeleteAnalysis(e.cfg.Model, id)
	if err != nil {
		return err
	}

	var runs int64
	if catalog, err := openCatalog(); err == nil {
		runs, err = catalog.DeleteRuns(e.cfg.Model, id)
		catalog.Close()
		if err != nil {
			return err
		}
	}

	if !removed && runs == 0 {
		fmt.Printf("Nothing to delete for %q.\n", id)
		return nil
	}
	fmt.Printf("Deleted analysis of %q (%d recorded runs).\n", id, runs)
	return nil
}
