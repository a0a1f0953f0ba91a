package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/approx/internal/experiment"
	"github.com/san-kum/approx/internal/export"
	"github.com/san-kum/approx/internal/storage"
	"github.com/san-kum/approx/internal/viz"
)

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', 10, 64)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMETHOD\tPROBLEM\tTIME\tESTIMATE\tABS_ERROR\tSTATUS")

	for _, run := range runs {
		status := "ok"
		if run.Error != "" {
			status = "failed"
		} else if len(run.Skipped) > 0 {
			status = fmt.Sprintf("%d skipped", len(run.Skipped))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Method,
			run.Problem,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			formatOptional(run.Estimate),
			formatOptional(run.AbsError),
			status,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	points, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("method: %s\n", meta.Method)
	fmt.Printf("problem: %s\n", meta.Problem)
	fmt.Printf("estimate: %s\n", formatOptional(meta.Estimate))
	fmt.Printf("exact: %s\n", formatOptional(meta.Exact))
	if meta.Error != "" {
		fmt.Printf("error: %s\n", meta.Error)
	}
	fmt.Printf("points: %d\n\n", len(points))

	if len(points) < 2 {
		return nil
	}

	caption := "y vs step"
	if meta.Method == experiment.MethodNewton {
		caption = "equation(x_k) vs iteration"
	}
	fmt.Println(viz.PlotTrace(points, caption, 70, 12))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	if len(points) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"step", "x", "y"}); err != nil {
		return err
	}
	for i, p := range points {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', 10, 64),
			strconv.FormatFloat(p.Y, 'f', 10, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	out := struct {
		*storage.RunMetadata
		Points any `json:"points"`
	}{meta, points}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exportPlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	points, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	opts := export.Options{Title: fmt.Sprintf("%s / %s", meta.Method, meta.Problem)}
	registry := experiment.NewRegistry()
	switch meta.Method {
	case experiment.MethodNewton:
		opts.YLabel = "equation(x)"
		if p, err := registry.GetRoot(meta.Problem); err == nil {
			opts.Reference = func(x float64) float64 {
				v, _ := p.Equation(x)
				return v
			}
			opts.ReferenceLabel = "equation"
		}
	default:
		if p, err := registry.GetODE2(meta.Problem); err == nil && p.Exact != nil {
			opts.Reference = func(x float64) float64 { return p.Exact(x, meta.Initial) }
		}
	}

	path := outFile
	if path == "" {
		path = runID + ".png"
	}
	if err := export.SaveTrace(path, points, opts); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func replayRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	return viz.RunReplay(fmt.Sprintf("%s / %s", meta.Method, meta.Problem), points, replayDelay)
}
