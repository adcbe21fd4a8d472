package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cpusched/internal/job"
	"cpusched/internal/logging"
	"cpusched/internal/report"
	"cpusched/internal/sched"
)

// DefaultWorkload is read when no file argument is given.
const DefaultWorkload = "input.txt"

type options struct {
	configPath string
	quantum    int64
	algorithms []string
	parallel   bool
	traceCSV   string
	gantt      bool
	noColor    bool
	logLevel   string
	logFormat  string
}

// NewRootCmd creates the root cobra command for the cpusched CLI.
func NewRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "cpusched [workload-file]",
		Short: "Simulate FCFS, Round Robin and SRTF CPU scheduling",
		Long: "cpusched reads a workload of \"pid arrival burst\" lines and prints the\n" +
			"schedule and average waiting/turnaround time for each algorithm.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultWorkload
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, opts, path)
		},
	}

	f := root.Flags()
	f.StringVar(&opts.configPath, "config", "config.yml", "Path to YAML config (missing file = defaults)")
	f.Int64VarP(&opts.quantum, "quantum", "q", sched.DefaultQuantum, "Round robin time quantum")
	f.StringSliceVarP(&opts.algorithms, "algorithms", "a", nil, "Algorithms to run (fcfs, rr, srtf)")
	f.BoolVar(&opts.parallel, "parallel", false, "Run the algorithms concurrently")
	f.StringVar(&opts.traceCSV, "trace-csv", "", "Write the scheduler event trace to this CSV file")
	f.BoolVar(&opts.gantt, "gantt", true, "Render a Gantt chart per algorithm")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	f.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	return root
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, opts options) (sched.Config, error) {
	cfg, err := sched.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("quantum") {
		cfg.Quantum = opts.quantum
	}
	if flags.Changed("algorithms") {
		cfg.Algorithms = opts.algorithms
	}
	if flags.Changed("parallel") {
		cfg.Parallel = opts.parallel
	}
	if flags.Changed("trace-csv") {
		cfg.TraceCSV = opts.traceCSV
	}
	if flags.Changed("gantt") {
		cfg.Gantt = opts.gantt
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts options, path string) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger := logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
	logger.Debug("config resolved", "quantum", cfg.Quantum, "algorithms", cfg.Algorithms, "parallel", cfg.Parallel)

	runner, err := sched.NewRunner(cfg, logger)
	if err != nil {
		return err
	}

	tasks, err := job.LoadFile(path, logger)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(out, "No tasks to schedule.")
		return nil
	}

	results, err := runner.Run(cmd.Context(), tasks)
	if err != nil {
		return err
	}

	ropts := report.Options{Gantt: cfg.Gantt, Color: !opts.noColor && !isNoColorEnv()}
	runs := make([]report.Run, 0, len(results))
	for _, res := range results {
		r, err := report.NewRun(res, tasks)
		if err != nil {
			return err
		}
		report.Write(out, r, ropts)
		runs = append(runs, r)
	}
	if len(runs) > 1 {
		report.Summary(out, runs, ropts)
	}

	if cfg.TraceCSV != "" {
		if err := writeTrace(cfg.TraceCSV, results, logger); err != nil {
			return err
		}
	}
	return nil
}

func writeTrace(path string, results []*sched.Result, logger *slog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	if err := sched.WriteTraceCSV(f, results); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close trace: %w", err)
	}
	logger.Info("trace written", "path", path)
	return nil
}

func isNoColorEnv() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}
