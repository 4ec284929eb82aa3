// Command rover runs rover missions on a bounded grid.
//
// A mission is read from a file, from stdin ("-") or from a built-in preset.
// Final positions are printed one per line as "x y H"; --format switches to
// JSON or CSV traces or an SVG drawing, and --grid/--plot/--summary add terminal visualisations.
// Rejected moves are logged to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/rover/internal/config"
	"github.com/san-kum/rover/internal/logging"
)

const (
	Version = "1.0.0"
	AppName = "rover"
)

var (
	configFile string
	logLevel   string
	logFormat  string
	quiet      bool

	preset      string
	format      string
	workers     int
	showGrid    bool
	showPlot    bool
	showSummary bool

	fps        int
	roverIndex int

	force bool
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: loading .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           AppName,
		Short:         "drive rovers across a bounded grid",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (text, json, logfmt)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress diagnostics")

	runCmd := &cobra.Command{
		Use:   "run [mission-file|-]",
		Short: "run a mission and print final positions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMission,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "use a built-in mission")
	runCmd.Flags().StringVarP(&format, "format", "f", config.DefaultOutputFormat, "output format (text, json, csv, svg)")
	runCmd.Flags().IntVarP(&workers, "workers", "w", config.DefaultWorkers, "rovers processed concurrently")
	runCmd.Flags().BoolVar(&showGrid, "grid", false, "draw the grid after the run")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot x and y per command")
	runCmd.Flags().BoolVar(&showSummary, "summary", false, "print a styled summary with metrics")

	replayCmd := &cobra.Command{
		Use:   "replay [mission-file|-]",
		Short: "replay one rover's path in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  replayMission,
	}
	replayCmd.Flags().StringVar(&preset, "preset", "", "use a built-in mission")
	replayCmd.Flags().IntVar(&roverIndex, "rover", 1, "rover to replay (1-based)")
	replayCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "steps per second")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in missions",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", AppName, Version)
		},
	}

	rootCmd.AddCommand(runCmd, replayCmd, presetsCmd, configCmd, versionCmd)
	return rootCmd
}

// loadSettings resolves defaults < config file < environment < flags.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("workers") {
		cfg.Run.Workers = workers
	}
	if flags.Changed("grid") {
		cfg.Output.Grid = showGrid
	}
	if flags.Changed("plot") {
		cfg.Output.Plot = showPlot
	}
	if flags.Changed("fps") {
		cfg.Run.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*log.Logger, error) {
	if quiet {
		return logging.Discard(), nil
	}
	return logging.New(cmd.ErrOrStderr(), cfg.Log)
}
