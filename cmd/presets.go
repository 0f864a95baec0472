package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tonhe/replaylens/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage overlay layout presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and saved presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		saved, err := preset.List(e.presetsDir)
		if err != nil {
			return err
		}

		table := tablewriter.NewTable(os.Stdout,
			tablewriter.WithConfig(tablewriter.Config{
				Row: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
			}),
		)
		table.Header("Preset", "Source", "Description")
		for _, name := range preset.BuiltinNames() {
			p, _ := preset.Builtin(name)
			table.Append(name, "built-in", p.Description)
		}
		for _, name := range saved {
			desc := ""
			if p, err := preset.Load(preset.Path(e.presetsDir, name)); err == nil {
				desc = p.Description
			}
			table.Append(name, preset.Path(e.presetsDir, name), desc)
		}
		return table.Render()
	},
}

var presetsSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the current overlay arrangement as a preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		name := args[0]
		if _, err := preset.Builtin(name); err == nil {
			return errors.Errorf("%q is a built-in preset", name)
		}
		path := preset.Path(e.presetsDir, name)
		if err := preset.Save(preset.FromConfig(name, e.cfg), path); err != nil {
			return err
		}
		fmt.Printf("Saved preset %q to %s.\n", name, path)
		return nil
	},
}

var presetsApplyCmd = &cobra.Command{
	Use:   "apply NAME",
	Short: "Apply a preset to the saved settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		p, err := preset.Find(e.presetsDir, args[0])
		if err != nil {
			return err
		}
		p.Apply(e.cfg)
		if err := e.save(); err != nil {
			return err
		}
		fmt.Printf("Applied preset %q.\n", p.Name)
		return nil
	},
}

func init() {
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsSaveCmd)
	presetsCmd.AddCommand(presetsApplyCmd)
}
