package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Inspect installed models",
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List model folders and whether they can run",
	Args:  cobra.NoArgs,
	RunE:  runModelsList,
}

var modelsVerifyCmd = &cobra.Command{
	Use:   "verify [NAME]",
	Short: "Check that a model is installed (default: configured model)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runModelsVerify,
}

var modelsUseCmd = &cobra.Command{
	Use:   "use NAME",
	Short: "Verify a model and make it the configured one",
	Args:  cobra.ExactArgs(1),
	RunE:  runModelsUse,
}

func init() {
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsVerifyCmd)
	modelsCmd.AddCommand(modelsUseCmd)
}

func runModelsList(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	names, err := e.models.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Printf("No models found in %s\n", e.models.Root)
		return nil
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
		}),
	)
	table.Header("Model", "Ready", "Analyses", "Note")
	for _, name := range names {
		st, _ := e.models.Check(name)
		files, _ := e.models.Analyses(name)
		marker := name
		if name == e.cfg.Model {
			marker = name + " *"
		}
		table.Append(marker, yesNo(st.Ready()), fmt.Sprintf("%d", len(files)), st.Reason)
	}
	return table.Render()
}

func runModelsVerify(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	name := e.cfg.Model
	if len(args) == 1 {
		name = args[0]
	}
	st, err := e.models.Check(name)
	if err != nil {
		return err
	}
	fmt.Printf("Model %q is ready (%s).\n", st.Model, e.models.AppletPath(name))
	return nil
}

func runModelsUse(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	name := args[0]
	st, checkErr := e.models.Check(name)
	e.cfg.Model = name
	e.cfg.ModelReady = st.Ready()
	if err := e.save(); err != nil {
		return err
	}
	if checkErr != nil {
		fmt.Printf("Model set to %q, but it is not ready: %s\n", name, st.Reason)
		return nil
	}
	fmt.Printf("Model set to %q.\n", name)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
