package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tonhe/replaylens/internal/config"
	"github.com/tonhe/replaylens/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved settings",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}
		fmt.Println(path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		c := e.cfg
		fmt.Printf("theme             %s\n", c.Theme)
		fmt.Printf("model             %s (ready: %t)\n", c.Model, c.ModelReady)
		fmt.Printf("log level         %s\n", c.LogLevel)
		fmt.Printf("analysis timeout  %s\n", c.AnalysisTimeout)
		fmt.Printf("csv header        %t\n", c.CSVHeader)
		fmt.Printf("overlay enabled   %t\n", c.Overlay.Enabled)
		fmt.Printf("frames            -%d / +%d (smoothing %d)\n", c.Overlay.PastFrames, c.Overlay.FutureFrames, c.Overlay.SmoothingWindow)
		fmt.Printf("keys              settings=%s analysis=%s\n", c.Keys.Settings, c.Keys.Analysis)
		for _, d := range c.ReplayDirs {
			fmt.Printf("replay dir        %s\n", d)
		}
		return nil
	},
}

var configThemeCmd = &cobra.Command{
	Use:   "theme NAME",
	Short: "Set the default theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !knownTheme(name) {
			return errors.Errorf("unknown theme %q (run 'replaylens themes')", name)
		}
		e, err := loadEnv()
		if err != nil {
			return err
		}
		e.cfg.Theme = name
		if err := e.save(); err != nil {
			return err
		}
		fmt.Printf("Default theme set to %q.\n", name)
		return nil
	},
}

var configModelCmd = &cobra.Command{
	Use:   "model NAME",
	Short: "Set the model used for analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runModelsUse,
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range styles.Slugs() {
			fmt.Println(name)
		}
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configThemeCmd)
	configCmd.AddCommand(configModelCmd)
}

func knownTheme(slug string) bool {
	_, ok := styles.Lookup(slug)
	return ok
}
