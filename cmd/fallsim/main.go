package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/full2null/fallingsimulator/internal/config"
	"github.com/full2null/fallingsimulator/internal/encode"
	"github.com/full2null/fallingsimulator/internal/export"
	"github.com/full2null/fallingsimulator/internal/render"
	"github.com/full2null/fallingsimulator/internal/sim"
	"github.com/full2null/fallingsimulator/internal/tui"
)

var (
	cd            float64
	area          float64
	height        float64
	mass          float64
	airResistance bool
	mode          string
	seconds       int
	fps           int
	outPath       string
	configFile    string
	preset        string
	exportFormat  string
)

// main registers the fallsim commands. The root command with no
// subcommand opens the interactive form.
func main() {
	rootCmd := &cobra.Command{
		Use:   "fallsim",
		Short: "falling-body simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			simulator := sim.New(render.NewPlotter(), encode.NewFFmpeg(), outPath)
			p := tea.NewProgram(tui.NewModel(simulator, config.DefaultConfig()))
			_, err := p.Run()
			return err
		},
	}
	rootCmd.PersistentFlags().StringVar(&outPath, "out", sim.DefaultVideoPath, "output video path")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one simulation and encode the video",
		RunE:  runSimulation,
	}
	addInputFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "print a terminal preview of the series",
		RunE:  plotSeries,
	}
	addInputFlags(plotCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write the series to stdout",
		RunE:  exportSeries,
	}
	addInputFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format (csv, json)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&cd, "cd", config.DefaultCd, "drag coefficient")
	cmd.Flags().Float64Var(&area, "area", config.DefaultArea, "cross-sectional area (m²)")
	cmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "initial height (m)")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass (kg)")
	cmd.Flags().BoolVar(&airResistance, "air-resistance", true, "model quadratic air drag")
	cmd.Flags().StringVar(&mode, "mode", string(sim.ModeHeight), "plotted quantity (velocity, height)")
	cmd.Flags().IntVar(&seconds, "time", config.DefaultSeconds, "duration (s)")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate (20, 30, 60)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveInputs merges preset, config file and flags into the value
// pair the core consumes. Flags win over the config file, which wins
// over the preset.
func resolveInputs(cmd *cobra.Command) (sim.Parameters, sim.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return sim.Parameters{}, sim.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return sim.Parameters{}, sim.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("cd") {
		cfg.Cd = cd
	}
	if cmd.Flags().Changed("area") {
		cfg.Area = area
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("mass") {
		cfg.Mass = mass
	}
	if cmd.Flags().Changed("air-resistance") {
		cfg.AirResistance = airResistance
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = sim.Mode(mode)
	}
	if cmd.Flags().Changed("time") {
		cfg.Seconds = seconds
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cfg.Output != "" && !cmd.Flags().Changed("out") {
		outPath = cfg.Output
	}

	params, runCfg := cfg.Split()
	return params, runCfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	params, cfg, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	simulator := sim.New(render.NewPlotter(), encode.NewFFmpeg(), outPath)

	fmt.Printf("simulating %s, %s quality...\n", render.Title(cfg), sim.Quality(cfg.FPS))
	res, err := simulator.Run(context.Background(), params, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("samples: %d\n", res.Series.Len())
	fmt.Printf("final %s: %.3f\n", cfg.Mode, res.Series.Values[res.Series.Len()-1])
	fmt.Printf("video: %s\n", res.VideoPath)
	return nil
}

func plotSeries(cmd *cobra.Command, args []string) error {
	params, cfg, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	s, err := sim.Compute(params, cfg)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(s.Values,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(render.Title(cfg)),
	)
	fmt.Println(graph)
	return nil
}

func exportSeries(cmd *cobra.Command, args []string) error {
	params, cfg, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	s, err := sim.Compute(params, cfg)
	if err != nil {
		return err
	}

	switch exportFormat {
	case "csv":
		return export.WriteCSV(os.Stdout, s, cfg.Mode)
	case "json":
		return export.WriteJSON(os.Stdout, s, cfg.Mode)
	}
	return fmt.Errorf("unknown format: %s", exportFormat)
}
