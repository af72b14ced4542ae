package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aditsuru-git/rpomodoro/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	Long:  `Prints the resolved config file path and the active preference values. Edit interactively with the 'c' key inside the timer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("  Config file: %s\n", path)
		fmt.Println()
		fmt.Printf("    theme:               %s\n", cfg.Theme)
		fmt.Printf("    work_duration:       %d min\n", cfg.WorkDuration)
		fmt.Printf("    short_break:         %d min\n", cfg.ShortBreak)
		fmt.Printf("    long_break:          %d min\n", cfg.LongBreak)
		fmt.Printf("    cycles_before_long:  %d\n", cfg.CyclesBeforeLong)
		fmt.Println()
		return nil
	},
}
