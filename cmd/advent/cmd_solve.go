package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent2017/internal/calendar"
)

// solveCmd runs a single solver
var solveCmd = &cobra.Command{
	Use:   "solve <day> [part]",
	Short: "Solve one puzzle part",
	Long: `Runs the solver for a day (1-25) and part (1 or 2, default 1) and
prints the result.

Example:
  advent solve 10 2 --input inputs/day10.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	day, part, err := parseDayPart(args)
	if err != nil {
		return err
	}
	entry, err := mustLookup(day, part)
	if err != nil {
		return err
	}
	input, err := loadInput(day)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := entry.Solve(input)
	if err != nil {
		return fmt.Errorf("day %d part %d: %w", day, part, err)
	}
	logger.Debug("solved",
		zap.Int("day", day),
		zap.Int("part", part),
		zap.Duration("elapsed", time.Since(start)))

	fmt.Println(result)
	return nil
}

// listCmd shows the registered solvers
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered puzzle solvers",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, entry := range calendar.Entries() {
			fmt.Printf("day %2d part %d  %s\n", entry.Day, entry.Part, entry.Name)
		}
		return nil
	},
}
