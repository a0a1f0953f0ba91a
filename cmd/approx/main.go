package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	logLevel string
	// run / sweep
	method     string
	x0         float64
	y0         float64
	targetX    float64
	deltaX     float64
	initialX   float64
	epsilon    float64
	maxIter    int
	configFile string
	preset     string
	noSave     bool
	showGraph  bool
	steps      []float64
	// export / replay
	outFile     string
	replayDelay time.Duration
)

// main registers the approx commands and exits with status 1 if the
// selected command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "approx",
		Short:         "euler and newton approximation lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".approx", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [problem]",
		Short: "run an approximation and store the trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runApproximation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	runCmd.Flags().BoolVar(&showGraph, "graph", false, "print an ascii graph of the trace")

	sweepCmd := &cobra.Command{
		Use:   "sweep [problem]",
		Short: "compare euler step sizes on one problem",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepSteps,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().Float64SliceVar(&steps, "steps", []float64{0.1, 0.01, 0.001, 0.0001}, "step sizes to compare")

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "list built-in problems per method",
		RunE:  listProblems,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run with a graph of its trace",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run's metadata and trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportPlotCmd := &cobra.Command{
		Use:   "export-plot [run_id]",
		Short: "render a run's trace to png/svg/pdf",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPlot,
	}
	exportPlotCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default <run_id>.png)")

	replayCmd := &cobra.Command{
		Use:   "replay [run_id]",
		Short: "step through a stored trace interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  replayRun,
	}
	replayCmd.Flags().DurationVar(&replayDelay, "delay", 50*time.Millisecond, "playback delay per point")

	rootCmd.AddCommand(runCmd, sweepCmd, problemsCmd, presetsCmd, listCmd, showCmd, exportCSVCmd, exportJSONCmd, exportPlotCmd, replayCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&method, "method", "euler-constant", "method (euler-constant, euler-general, newton)")
	cmd.Flags().Float64Var(&x0, "x0", 0, "initial x (euler)")
	cmd.Flags().Float64Var(&y0, "y0", 0, "initial y (euler)")
	cmd.Flags().Float64Var(&targetX, "target", 0, "target x (euler)")
	cmd.Flags().Float64Var(&deltaX, "dx", 0.01, "step size magnitude (euler)")
	cmd.Flags().Float64Var(&initialX, "initial-x", 0, "initial estimate (newton)")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 0.0001, "convergence tolerance (newton)")
	cmd.Flags().IntVar(&maxIter, "max-iter", 10000, "iteration cap, negative for none (newton)")
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      lvl,
			TimeFormat: "15:04:05",
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		}),
	))
	return nil
}
