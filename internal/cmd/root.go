package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	tea "charm.land/bubbletea/v2"
	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/scroller/internal/config"
	"github.com/charmbracelet/scroller/internal/log"
	"github.com/charmbracelet/scroller/internal/scroller"
	"github.com/charmbracelet/scroller/internal/ui/common"
	"github.com/charmbracelet/scroller/internal/ui/model"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "devel"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok && Version == "devel" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			Version = v
		}
	}

	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")

	rootCmd.PersistentFlags().IntP("count", "n", 0, "Number of items")
	rootCmd.PersistentFlags().Bool("loop", false, "Wrap around at both ends")
	rootCmd.PersistentFlags().Bool("horizontal", false, "Scroll horizontally")
	rootCmd.PersistentFlags().Float64("spacing", 0, "Cells between two items")
	rootCmd.PersistentFlags().Int("start", 0, "Index of the first visible item")

	rootCmd.Flags().Bool("staggered", false, "Create one widget per frame")
	rootCmd.Flags().Bool("no-init", false, "Do not build the list on start")

	rootCmd.AddCommand(traceCmd)
}

var rootCmd = &cobra.Command{
	Use:   "scroller",
	Short: "A recycling list of any length in your terminal",
	Long: heredoc.Doc(`
		Scroller shows a list of any length using a handful of widgets. Widgets
		that leave the viewport are moved to the other end and rebound to the
		item they now show.
	`),
	Example: heredoc.Doc(`
		# A million items
		scroller -n 1000000

		# An endless horizontal strip
		scroller --horizontal --loop -n 20

		# Build the pool one widget at a time
		scroller --staggered
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := log.Setup(cfg.LogFile(), cfg.Options.Debug); err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}

		ui := model.New(common.DefaultCommon(cfg))
		program := tea.NewProgram(ui, tea.WithContext(cmd.Context()))

		slog.Info("Starting scroller", "version", Version, "count", cfg.Count, "loop", cfg.Loop)
		if _, err := program.Run(); err != nil {
			slog.Error("TUI run error", "error", err)
			return fmt.Errorf("TUI error: %v", err)
		}
		return nil
	},
}

func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads the configuration and applies the command line flags
// that were set on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd == "" {
		var err error
		cwd, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %v", err)
		}
	}
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(cwd, path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Options.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("count") {
		cfg.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("loop") {
		cfg.Loop, _ = flags.GetBool("loop")
	}
	if flags.Changed("horizontal") {
		if h, _ := flags.GetBool("horizontal"); h {
			cfg.Direction = scroller.Horizontal
		} else {
			cfg.Direction = scroller.Vertical
		}
	}
	if flags.Changed("spacing") {
		cfg.Spacing, _ = flags.GetFloat64("spacing")
	}
	if flags.Changed("start") {
		cfg.StartIndex, _ = flags.GetInt("start")
	}
	if flags.Lookup("staggered") != nil && flags.Changed("staggered") {
		cfg.InitializeStaggered, _ = flags.GetBool("staggered")
	}
	if flags.Lookup("no-init") != nil && flags.Changed("no-init") {
		noInit, _ := flags.GetBool("no-init")
		cfg.InitializeOnStart = !noInit
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
