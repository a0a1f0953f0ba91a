package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/approx/internal/config"
	"github.com/san-kum/approx/internal/experiment"
	"github.com/san-kum/approx/internal/storage"
	"github.com/san-kum/approx/internal/viz"
)

// buildConfig layers defaults, a preset or config file, and explicitly set
// flags, in that order.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	if preset != "" && configFile != "" {
		return nil, fmt.Errorf("--preset and --config cannot be combined")
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Problem = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Problem, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Problem))
		}
		cfg = p
	}

	flags := cmd.Flags()
	if flags.Changed("method") || (configFile == "" && preset == "") {
		cfg.Method = method
	}
	if flags.Changed("x0") {
		cfg.X0 = config.Float(x0)
	}
	if flags.Changed("y0") {
		cfg.Y0 = config.Float(y0)
	}
	if flags.Changed("target") {
		cfg.TargetX = config.Float(targetX)
	}
	if flags.Changed("dx") || (configFile == "" && preset == "") {
		cfg.DeltaX = deltaX
	}
	if flags.Changed("initial-x") {
		cfg.InitialX = config.Float(initialX)
	}
	if flags.Changed("epsilon") || (configFile == "" && preset == "") {
		cfg.Epsilon = epsilon
	}
	if flags.Changed("max-iter") || (configFile == "" && preset == "") {
		cfg.MaxIterations = maxIter
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runApproximation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Debug("starting run", "method", cfg.Method, "problem", cfg.Problem)
	exp := experiment.New(cfg.Experiment(), experiment.NewRegistry(), slog.Default())
	result, runErr := exp.Run(ctx)
	if result == nil {
		return runErr
	}

	fmt.Println(viz.RenderResult(result))

	if showGraph && len(result.Points) > 1 {
		fmt.Println()
		fmt.Println(viz.PlotTrace(result.Points, fmt.Sprintf("%s trace", cfg.Problem), 70, 12))
	}

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(result)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return runErr
}

func sweepSteps(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("no step sizes given")
	}

	results, err := experiment.Sweep(context.Background(), cfg.Experiment(), steps, experiment.NewRegistry(), slog.Default())
	if err != nil {
		return err
	}

	fmt.Printf("step sweep: %s / %s\n\n", cfg.Method, cfg.Problem)
	fmt.Print(viz.RenderSweep(results))
	return nil
}

func listProblems(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPROBLEM\tDESCRIPTION")
	for _, m := range registry.Methods() {
		for _, name := range registry.ListProblems(m) {
			fmt.Fprintf(w, "%s\t%s\t%s\n", m, name, registry.Describe(m, name))
		}
	}
	return w.Flush()
}

func listPresets(problem string) error {
	presets := config.ListPresets(problem)
	if len(presets) == 0 {
		fmt.Printf("no presets for problem: %s\n", problem)
		return nil
	}
	fmt.Printf("presets for %s:\n", problem)
	for _, name := range presets {
		p := config.GetPreset(problem, name)
		fmt.Printf("  %-10s %s\n", name, p.Method)
	}
	return nil
}
