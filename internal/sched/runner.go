package sched

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Runner executes a fixed list of schedulers over the same workload.
type Runner struct {
	schedulers []Scheduler
	parallel   bool
	logger     *slog.Logger
}

// NewRunner builds one scheduler per configured algorithm. A nil logger discards.
func NewRunner(cfg Config, logger *slog.Logger) (*Runner, error) {
	algs, err := cfg.ParsedAlgorithms()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Runner{parallel: cfg.Parallel, logger: logger}
	for _, alg := range algs {
		s, err := New(alg, cfg)
		if err != nil {
			return nil, err
		}
		r.schedulers = append(r.schedulers, s)
	}
	return r, nil
}

// Run schedules tasks with every configured scheduler and returns results in
// configuration order. Each scheduler works on its own copy of tasks.
func (r *Runner) Run(ctx context.Context, tasks []Task) ([]*Result, error) {
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	results := make([]*Result, len(r.schedulers))
	if !r.parallel {
		for i, s := range r.schedulers {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := r.runOne(s, tasks)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range r.schedulers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.runOne(s, tasks)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) runOne(s Scheduler, tasks []Task) (*Result, error) {
	res, err := s.Schedule(tasks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Algorithm(), err)
	}
	r.logger.Debug("schedule complete",
		"algorithm", s.Algorithm(),
		"records", len(res.Records),
		"events", len(res.Events),
		"idle_ticks", res.IdleTicks,
	)
	return res, nil
}
