package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"advent2017/internal/calendar"
	"advent2017/internal/store"
)

var (
	historyLimit   int
	historyFastest bool
)

// historyCmd prints recorded runs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded solver runs",
	Long: `Prints the most recent runs recorded by "advent all --record".

With --fastest, prints the quickest recorded run per puzzle part
instead.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	history, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer history.Close()

	if historyFastest {
		return printFastest(history)
	}

	runs, err := history.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}
	for _, run := range runs {
		printRun(run)
	}
	return nil
}

func printFastest(history *store.Store) error {
	found := 0
	for _, entry := range calendar.Entries() {
		run, err := history.Fastest(entry.Day, entry.Part)
		if errors.Is(err, store.ErrNoRuns) {
			continue
		}
		if err != nil {
			return err
		}
		found++
		printRun(run)
	}
	if found == 0 {
		fmt.Println("No runs recorded.")
	}
	return nil
}

func printRun(run store.Run) {
	fmt.Printf("%s  day %2d part %d  %-12s  %-36s %v\n",
		run.Created.Local().Format(time.DateTime),
		run.Day, run.Part, run.Name, run.Result, run.Elapsed.Round(time.Microsecond))
}
