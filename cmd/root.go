// Package cmd provides the CLI commands for rpomodoro.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/aditsuru-git/rpomodoro/internal/adapters/tui"
	"github.com/aditsuru-git/rpomodoro/internal/config"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"

	// Global flags
	configPath string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rpomodoro",
	Short: "A fullscreen terminal pomodoro timer",
	Long: `rpomodoro is a terminal pomodoro timer rendered as a large block-glyph
countdown clock. It tracks a single work/break cycle and persists your
theme and interval preferences.

Keys: space start/pause, r reset, s skip phase, c configure, q quit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: <user config dir>/rpomodoro/config.json)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("rpomodoro\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(configCmd)
}

// resolveConfigPath honors the --config flag over the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// runTimer loads preferences and hands the terminal to the TUI. Bubbletea's
// alt-screen program restores raw mode and the main screen on every exit
// path, interrupt included.
func runTimer(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("rpomodoro requires an interactive terminal")
	}

	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(cfg, path), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	// Errors hit inside the loop (config save) surface after teardown.
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
