// Package report renders scheduling results for the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"cpusched/internal/sched"
)

// Options controls what a report includes.
type Options struct {
	Gantt bool
	Color bool
}

// Run is everything needed to report one algorithm.
type Run struct {
	Result  *sched.Result
	Stats   sched.Stats
	Metrics []sched.TaskMetrics
}

// NewRun derives statistics and per-task metrics for res.
func NewRun(res *sched.Result, tasks []sched.Task) (Run, error) {
	st, err := sched.Statistics(res.Records, tasks)
	if err != nil {
		return Run{}, fmt.Errorf("%s statistics: %w", res.Algorithm, err)
	}
	m, err := sched.Metrics(res.Records, tasks)
	if err != nil {
		return Run{}, fmt.Errorf("%s metrics: %w", res.Algorithm, err)
	}
	return Run{Result: res, Stats: st, Metrics: m}, nil
}

// Write prints the title, event lines, schedule table, optional Gantt chart
// and averages of one run.
func Write(w io.Writer, run Run, opts Options) {
	title := run.Result.Algorithm.Title() + " Scheduling Results"
	if run.Result.Algorithm == sched.AlgorithmRR {
		title += fmt.Sprintf(" (quantum %d)", run.Result.Quantum)
	}
	writeTitle(w, title, opts.Color)
	writeEvents(w, run.Result.Records)
	writeTable(w, run)
	if opts.Gantt {
		writeGantt(w, run.Result.Timeline())
	}
	_, _ = fmt.Fprintf(w, "Average Waiting Time: %.2f\n", run.Stats.AvgWaiting)
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n\n", run.Stats.AvgTurnaround)
}

// Summary prints one row per run so the disciplines can be compared.
func Summary(w io.Writer, runs []Run, opts Options) {
	writeTitle(w, "Summary", opts.Color)
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Makespan", "Idle", "Throughput"})
	for _, run := range runs {
		table.Append([]string{
			run.Result.Algorithm.Title(),
			fmt.Sprintf("%.2f", run.Stats.AvgWaiting),
			fmt.Sprintf("%.2f", run.Stats.AvgTurnaround),
			fmt.Sprint(run.Stats.Makespan),
			fmt.Sprint(run.Result.IdleTicks),
			fmt.Sprintf("%.2f/t", run.Stats.Throughput),
		})
	}
	table.Render()
}

func writeTitle(w io.Writer, title string, colored bool) {
	bold := color.New(color.Bold, color.FgCyan)
	if !colored {
		bold.DisableColor()
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
	_, _ = bold.Fprintln(w, title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func writeEvents(w io.Writer, records []sched.CompletionRecord) {
	for _, rec := range records {
		_, _ = fmt.Fprintf(w, "Time %d: Task %d starts\n", rec.Start, rec.TaskID)
		_, _ = fmt.Fprintf(w, "Time %d: Task %d finishes\n", rec.Finish, rec.TaskID)
	}
	_, _ = fmt.Fprintln(w)
}

func writeTable(w io.Writer, run Run) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Finish", "Turnaround", "Wait"})
	for _, m := range run.Metrics {
		table.Append([]string{
			fmt.Sprint(m.Task.ID),
			fmt.Sprint(m.Task.Arrival),
			fmt.Sprint(m.Task.Burst),
			fmt.Sprint(m.Start),
			fmt.Sprint(m.Finish),
			fmt.Sprint(m.Turnaround),
			fmt.Sprint(m.Waiting),
		})
	}
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", run.Stats.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", run.Stats.AvgWaiting)})
	table.Render()
}

func writeGantt(w io.Writer, slices []sched.Slice) {
	if len(slices) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range slices {
		label := fmt.Sprint(s.TaskID)
		if s.Idle {
			label = "idle"
		}
		padding := strings.Repeat(" ", max(0, (8-len(label))/2))
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range slices {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(slices)-1 {
			_, _ = fmt.Fprint(w, s.Stop)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}
