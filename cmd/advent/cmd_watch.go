package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent2017/internal/watch"
)

// watchCmd re-solves on input changes
var watchCmd = &cobra.Command{
	Use:   "watch <day> [part]",
	Short: "Re-run a solver whenever its input file changes",
	Long: `Watches the input file for a day and re-runs the solver on every
write. Editors that replace the file on save are handled by watching
the containing directory.

Stop with Ctrl-C.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	day, part, err := parseDayPart(args)
	if err != nil {
		return err
	}
	entry, err := mustLookup(day, part)
	if err != nil {
		return err
	}

	path := inputPath
	if path == "" {
		path = cfg.InputPath(day)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}

	solve := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("failed to read input", zap.Error(err))
			return
		}
		start := time.Now()
		result, err := entry.Solve(string(data))
		if err != nil {
			fmt.Printf("day %2d part %d  error: %v\n", day, part, err)
			return
		}
		fmt.Printf("day %2d part %d  %-36s %v\n", day, part, result, time.Since(start).Round(time.Microsecond))
	}
	solve()

	watcher, err := watch.New(path, 100*time.Millisecond, logger, solve)
	if err != nil {
		return err
	}
	watcher.Start(cmd.Context())
	defer watcher.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	<-sigCh
	logger.Info("Received shutdown signal")
	return nil
}
