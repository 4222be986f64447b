package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent2017/internal/calendar"
	"advent2017/internal/runner"
	"advent2017/internal/store"
)

var (
	record   bool
	parallel int
)

// allCmd runs every registered solver
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every solver with available inputs",
	Long: `Runs every registered solver concurrently over the configured input
directory, reporting per-part results and timings. Days without an
input file are skipped.

With --record, results are written to the run history database.`,
	RunE: runAll,
}

func runAll(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	var entries []calendar.Entry
	for _, entry := range calendar.Entries() {
		if _, err := os.Stat(cfg.InputPath(entry.Day)); err == nil {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return fmt.Errorf("no input files found under %s", cfg.InputDir)
	}

	limit := cfg.Parallel
	if parallel > 0 {
		limit = parallel
	}

	var history *store.Store
	if record {
		var err error
		history, err = store.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer history.Close()
	}

	inputs := func(day int) (string, error) {
		data, err := os.ReadFile(cfg.InputPath(day))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	start := time.Now()
	results, err := runner.New(logger, limit).Run(ctx, entries, inputs)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Printf("day %2d part %d  %-12s  error: %v\n",
				result.Entry.Day, result.Entry.Part, result.Entry.Name, result.Err)
			continue
		}
		fmt.Printf("day %2d part %d  %-12s  %-36s %v\n",
			result.Entry.Day, result.Entry.Part, result.Entry.Name, result.Value, result.Elapsed.Round(time.Microsecond))

		if history != nil {
			_, err := history.Record(store.Run{
				Day:     result.Entry.Day,
				Part:    result.Entry.Part,
				Name:    result.Entry.Name,
				Result:  result.Value,
				Elapsed: result.Elapsed,
			})
			if err != nil {
				logger.Warn("failed to record run", zap.Error(err))
			}
		}
	}
	logger.Info("calendar finished",
		zap.Int("solvers", len(results)),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)))

	if failed > 0 {
		return fmt.Errorf("%d solver(s) failed", failed)
	}
	return nil
}
