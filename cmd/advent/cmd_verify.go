package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"advent2017/internal/calendar"
)

// answersManifest is the YAML shape of the expected-answers file:
//
//	day01:
//	  part1: "1341"
//	  part2: "1348"
type answersManifest map[string]struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// verifyCmd checks solvers against recorded answers
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify solvers against the answers manifest",
	Long: `Re-runs every solver that has both an input file and an expected
answer in the answers manifest, and reports mismatches. Exits
non-zero when any answer differs.`,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(cfg.AnswersPath)
	if err != nil {
		return fmt.Errorf("failed to read answers manifest: %w", err)
	}
	var manifest answersManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("failed to parse answers manifest: %w", err)
	}

	checked, mismatched := 0, 0
	for _, entry := range calendar.Entries() {
		expected, ok := manifest[fmt.Sprintf("day%02d", entry.Day)]
		if !ok {
			continue
		}
		want := expected.Part1
		if entry.Part == 2 {
			want = expected.Part2
		}
		if want == "" {
			continue
		}

		input, err := os.ReadFile(cfg.InputPath(entry.Day))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("day %d: failed to read input: %w", entry.Day, err)
		}

		got, err := entry.Solve(string(input))
		checked++
		if err != nil {
			mismatched++
			fmt.Printf("day %2d part %d  FAIL  %v\n", entry.Day, entry.Part, err)
			continue
		}
		if got != want {
			mismatched++
			fmt.Printf("day %2d part %d  FAIL  got %s, want %s\n", entry.Day, entry.Part, got, want)
			continue
		}
		fmt.Printf("day %2d part %d  ok\n", entry.Day, entry.Part)
	}

	if mismatched > 0 {
		return fmt.Errorf("%d of %d answers mismatched", mismatched, checked)
	}
	fmt.Printf("%d answers verified\n", checked)
	return nil
}
