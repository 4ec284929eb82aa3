package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/rover/internal/config"
	"github.com/san-kum/rover/internal/export"
	"github.com/san-kum/rover/internal/logging"
	"github.com/san-kum/rover/internal/mission"
	"github.com/san-kum/rover/internal/tui"
	"github.com/san-kum/rover/internal/viz"
)

func loadMission(cmd *cobra.Command, args []string) (*mission.Mission, error) {
	if preset != "" {
		if len(args) > 0 {
			return nil, errors.New("--preset cannot be combined with a mission file")
		}
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return mission.ParseString(p.Source)
	}

	if len(args) == 0 || args[0] == "-" {
		return mission.Parse(cmd.InOrStdin())
	}
	return mission.Load(args[0])
}

func runMission(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	m, err := loadMission(cmd, args)
	if err != nil {
		return err
	}

	runner := mission.Runner{Workers: cfg.Run.Workers, Logger: logger}
	result, err := runner.Run(cmd.Context(), m)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := export.Write(out, cfg.Output.Format, result); err != nil {
		return err
	}

	visuals := cfg.Output.Grid || cfg.Output.Plot || showSummary
	if !visuals {
		return nil
	}
	if cfg.Output.Format != export.FormatText {
		logger.Warn("visualisations are only drawn with text output", "format", cfg.Output.Format)
		return nil
	}

	if showSummary {
		fmt.Fprintln(out, viz.Summary(result))
	}
	if cfg.Output.Grid {
		markers := make([]viz.Marker, len(result.Rovers))
		for i, rr := range result.Rovers {
			markers[i] = viz.Marker{Pose: rr.Final, Trail: rr.Trace}
		}
		fmt.Fprintln(out, viz.RenderGrid(result.Grid, markers))
	}
	if cfg.Output.Plot {
		for _, rr := range result.Rovers {
			if plot := viz.PlotPath(rr.Name, rr.Trace, cfg.Output.PlotHeight); plot != "" {
				fmt.Fprintln(out, plot)
			}
		}
	}
	return nil
}

func replayMission(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	m, err := loadMission(cmd, args)
	if err != nil {
		return err
	}
	if roverIndex < 1 || roverIndex > len(m.Rovers) {
		return fmt.Errorf("rover %d out of range (mission has %d)", roverIndex, len(m.Rovers))
	}

	// the replay owns the terminal, so diagnostics are dropped
	runner := mission.Runner{Workers: cfg.Run.Workers, Logger: logging.Discard()}
	result, err := runner.Run(cmd.Context(), m)
	if err != nil {
		return err
	}

	return tui.Run(tui.NewReplay(result.Grid, result.Rovers[roverIndex-1], roverIndex-1, cfg.Run.FPS))
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		fmt.Fprintf(w, "%s\t%s\n", name, config.GetPreset(name).Description)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "rover.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
