package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/approx/internal/experiment"
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.10g", v)
}

// RenderResult formats a single run for the terminal.
func RenderResult(r *experiment.Result) string {
	rows := []string{
		titleStyle.Render(fmt.Sprintf("%s / %s", r.Method, r.Problem)),
	}

	if r.Method == experiment.MethodNewton {
		rows = append(rows,
			row("initial x", num(r.Initial.X)),
			row("epsilon", num(r.Epsilon)),
			row("iterations", fmt.Sprint(r.Stats.Iterations)),
		)
	} else {
		rows = append(rows,
			row("initial", fmt.Sprintf("(%s, %s)", num(r.Initial.X), num(r.Initial.Y))),
			row("target x", num(r.TargetX)),
			row("step", num(r.Stats.StepSize)),
			row("steps", fmt.Sprint(r.Stats.Steps)),
		)
		skipped := fmt.Sprint(r.Stats.Skipped)
		if r.Stats.Skipped > 0 {
			skipped = warnStyle.Render(skipped)
		}
		rows = append(rows, row("skipped", skipped))
	}

	if r.Failed() {
		rows = append(rows, row("result", errorStyle.Render(r.Err.Error())))
	} else {
		rows = append(rows,
			row("estimate", goodStyle.Render(num(r.Estimate))),
			row("exact", num(r.Exact)),
			row("abs error", num(r.AbsError)),
		)
	}

	return panelStyle.Render(strings.Join(rows, "\n"))
}

// RenderSweep formats a step-size convergence table.
func RenderSweep(results []*experiment.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s  %-10s  %-18s  %-12s  %s\n", "step", "steps", "estimate", "abs_error", "ratio")
	b.WriteString(strings.Repeat("-", 66) + "\n")

	prev := math.NaN()
	for _, r := range results {
		ratio := "-"
		if !math.IsNaN(prev) && r.AbsError > 0 {
			ratio = fmt.Sprintf("%.2f", prev/r.AbsError)
		}
		fmt.Fprintf(&b, "%-12g  %-10d  %-18.12g  %-12.3e  %s\n",
			math.Abs(r.Stats.StepSize), r.Stats.Steps, r.Estimate, r.AbsError, ratio)
		prev = r.AbsError
	}
	return b.String()
}
