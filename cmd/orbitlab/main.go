package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitlab/internal/config"
	"github.com/san-kum/orbitlab/internal/gui"
	"github.com/san-kum/orbitlab/internal/input"
	"github.com/san-kum/orbitlab/internal/scene"
	"github.com/san-kum/orbitlab/internal/sim"
	"github.com/san-kum/orbitlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dt         float64
	duration   float64
	configFile string
	preset     string
	sceneFile  string
	track      string
	// Frame rate for live view
	frameRate int
)

// main is the entry point for the orbitlab CLI; it registers commands and
// flags and launches the 3D GUI when no subcommand is provided.
func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "toy gravity sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the 3D window when no command given
			w, err := buildWorld()
			if err != nil {
				return err
			}
			gui.Run(w)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&sceneFile, "scene", "", "scene file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print results",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultMaxDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", 60.0, "simulated duration")
	runCmd.Flags().StringVar(&track, "track", "", "body whose orbital radius to plot")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the interactive 3D window",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := buildWorld()
			if err != nil {
				return err
			}
			gui.Run(w)
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	sceneCmd := &cobra.Command{
		Use:   "scene [path]",
		Short: "write the default scene as an editable yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return scene.SaveDefault(args[0])
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, presetsCmd, sceneCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: preset if named, then config
// file, then defaults.
func loadConfig() (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func buildWorld() (*sim.World, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	path := sceneFile
	if path == "" {
		path = cfg.Scene
	}

	var sc scene.Scene
	if path != "" {
		sc, err = scene.Load(path, cfg.Physics.G)
		if err != nil {
			return nil, fmt.Errorf("failed to load scene: %w", err)
		}
	} else {
		sc = scene.Default()
	}

	sc.Camera.Sensitivity = cfg.Camera.Sensitivity
	sc.Camera.Speed = cfg.Camera.Speed

	w := sim.NewWorld(sc, cfg.Params())
	w.Clock = sim.Clock{MaxDt: cfg.MaxDt}
	return w, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	w, err := buildWorld()
	if err != nil {
		return err
	}
	// Fixed-step run; the interactive frame-time cap does not apply.
	w.Clock = sim.Clock{MaxDt: dt}

	trackIdx := -1
	for i := range w.Bodies {
		if w.Bodies[i].Name == track {
			trackIdx = i
		}
	}
	if track != "" && trackIdx < 0 {
		return fmt.Errorf("unknown body: %s", track)
	}
	if trackIdx < 0 && len(w.Bodies) > 1 {
		trackIdx = 1
	}

	steps := int(duration / dt)
	fmt.Printf("running %d bodies for %.1fs (dt=%.4fs, %d steps)...\n", len(w.Bodies), duration, dt, steps)
	p0, e0 := w.Momentum(), w.TotalEnergy()

	var radii []float64
	sampleEvery := steps / 200
	if sampleEvery < 1 {
		sampleEvery = 1
	}
	for i := 0; i < steps; i++ {
		w.Step(dt, input.Snapshot{})
		if trackIdx > 0 && i%sampleEvery == 0 {
			r := w.Bodies[trackIdx].Position.Sub(w.Bodies[0].Position).Length()
			radii = append(radii, r)
		}
	}

	fmt.Printf("simulated %.2fs\n\n", w.Elapsed)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMASS\tPOSITION\tSPEED\tRADIUS")
	for _, b := range w.Bodies {
		fmt.Fprintf(tw, "%s\t%.1f\t(%.2f, %.2f, %.2f)\t%.3f\t%.3f\n",
			b.Name, b.Mass,
			b.Position.X, b.Position.Y, b.Position.Z,
			b.Velocity.Length(),
			b.Position.Sub(w.Bodies[0].Position).Length(),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	p1, e1 := w.Momentum(), w.TotalEnergy()
	fmt.Printf("\nmomentum: %.6f -> %.6f\n", p0, p1)
	fmt.Printf("energy:   %.3f -> %.3f\n", e0, e1)

	if len(radii) > 1 {
		fmt.Println()
		graph := asciigraph.Plot(radii,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s orbital radius", w.Bodies[trackIdx].Name)),
		)
		fmt.Println(graph)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	w, err := buildWorld()
	if err != nil {
		return err
	}

	m := viz.NewModel(w, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
