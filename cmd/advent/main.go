package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"advent2017/internal/calendar"
	"advent2017/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	inputPath  string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "advent - Advent of Code 2017 solvers",
	Long: `advent runs the 2017 puzzle solvers: one command to solve a single
day, run the whole calendar, verify answers, or watch an input file.

Inputs are read from the configured input directory (day01.txt ..
day25.txt), an explicit --input file, or stdin.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to parse log level: %w", err)
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "advent.yaml", "Configuration file")

	solveCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file (default: configured input dir, or stdin)")
	watchCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file to watch (default: configured input dir)")
	allCmd.Flags().BoolVar(&record, "record", false, "Record results to the run history database")
	allCmd.Flags().IntVar(&parallel, "parallel", 0, "Concurrent solver limit (default: configured value)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().BoolVar(&historyFastest, "fastest", false, "Show the fastest recorded run per puzzle part")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseDayPart reads the positional day and optional part arguments.
func parseDayPart(args []string) (day, part int, err error) {
	day, err = strconv.Atoi(args[0])
	if err != nil || day < 1 || day > 25 {
		return 0, 0, fmt.Errorf("invalid day %q: want 1-25", args[0])
	}
	part = 1
	if len(args) > 1 {
		part, err = strconv.Atoi(args[1])
		if err != nil || part < 1 || part > 2 {
			return 0, 0, fmt.Errorf("invalid part %q: want 1 or 2", args[1])
		}
	}
	return day, part, nil
}

// loadInput resolves the input text for a day: the --input flag, then
// the configured input directory, then stdin when neither exists.
func loadInput(day int) (string, error) {
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}

	path := cfg.InputPath(day)
	if data, err := os.ReadFile(path); err == nil {
		return string(data), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	stat, err := os.Stdin.Stat()
	if err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no input for day %d: %s missing and stdin is a terminal", day, path)
}

// mustLookup resolves a solver with a uniform error message.
func mustLookup(day, part int) (calendar.Entry, error) {
	entry, err := calendar.Lookup(day, part)
	if err != nil {
		return calendar.Entry{}, fmt.Errorf("unknown puzzle: %w", err)
	}
	return entry, nil
}
