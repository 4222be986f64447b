// Package runner executes many solvers concurrently and collects
// their results in calendar order.
package runner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"advent2017/internal/calendar"
)

// Result is the outcome of one solver execution.
type Result struct {
	Entry   calendar.Entry
	Value   string
	Elapsed time.Duration
	Err     error
}

// InputFunc supplies the input text for a day.
type InputFunc func(day int) (string, error)

// Runner fans solver executions out over a bounded worker pool.
type Runner struct {
	logger   *zap.Logger
	parallel int
}

// New creates a runner with the given concurrency bound.
func New(logger *zap.Logger, parallel int) *Runner {
	if parallel < 1 {
		parallel = 1
	}
	return &Runner{logger: logger, parallel: parallel}
}

// Run executes the given entries concurrently. A solver failure is
// captured in its Result, not returned; Run only fails when the
// context is canceled or an input cannot be loaded. Results come back
// in entry order.
func (r *Runner) Run(ctx context.Context, entries []calendar.Entry, input InputFunc) ([]Result, error) {
	results := make([]Result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := input(entry.Day)
			if err != nil {
				return fmt.Errorf("day %d: load input: %w", entry.Day, err)
			}

			start := time.Now()
			value, err := entry.Solve(text)
			elapsed := time.Since(start)

			results[i] = Result{Entry: entry, Value: value, Elapsed: elapsed, Err: err}
			if err != nil {
				r.logger.Warn("solver failed",
					zap.Int("day", entry.Day),
					zap.Int("part", entry.Part),
					zap.Error(err))
				return nil
			}
			r.logger.Debug("solver finished",
				zap.Int("day", entry.Day),
				zap.Int("part", entry.Part),
				zap.String("result", value),
				zap.Duration("elapsed", elapsed))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
