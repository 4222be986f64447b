package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"advent2017/internal/day01"
	"advent2017/internal/day02"
	"advent2017/internal/day03"
	"advent2017/internal/day04"
	"advent2017/internal/day05"
	"advent2017/internal/day06"
	"advent2017/internal/day07"
	"advent2017/internal/day08"
	"advent2017/internal/day09"
	"advent2017/internal/day10"
	"advent2017/internal/day11"
	"advent2017/internal/day12"
	"advent2017/internal/day13"
	"advent2017/internal/day14"
	"advent2017/internal/day15"
	"advent2017/internal/day16"
	"advent2017/internal/day17"
	"advent2017/internal/day18"
	"advent2017/internal/day19"
	"advent2017/internal/day20"
	"advent2017/internal/day21"
	"advent2017/internal/day22"
	"advent2017/internal/day23"
	"advent2017/internal/day24"
	"advent2017/internal/day25"
	"advent2017/internal/numutil"
	"advent2017/internal/processor"
)

func init() {
	register(1, 1, "captcha", func(input string) (string, error) {
		digits, err := numutil.Digits(input)
		if err != nil {
			return "", err
		}
		return itoa(day01.Captcha(digits)), nil
	})
	register(1, 2, "captcha", func(input string) (string, error) {
		digits, err := numutil.Digits(input)
		if err != nil {
			return "", err
		}
		return itoa(day01.HalfwayCaptcha(digits)), nil
	})

	register(2, 1, "checksum", func(input string) (string, error) {
		table, err := numutil.NumberTable(input)
		if err != nil {
			return "", err
		}
		return itoa(day02.Checksum(table)), nil
	})
	register(2, 2, "checksum", func(input string) (string, error) {
		table, err := numutil.NumberTable(input)
		if err != nil {
			return "", err
		}
		sum, err := day02.DivisibleChecksum(table)
		if err != nil {
			return "", err
		}
		return itoa(sum), nil
	})

	register(3, 1, "spiralmemory", func(input string) (string, error) {
		n, err := atoi(input)
		if err != nil {
			return "", err
		}
		return itoa(day03.Steps(n)), nil
	})
	register(3, 2, "spiralmemory", func(input string) (string, error) {
		n, err := atoi(input)
		if err != nil {
			return "", err
		}
		return itoa(day03.StressTest(n)), nil
	})

	register(4, 1, "passphrase", func(input string) (string, error) {
		return itoa(day04.CountValid(input, day04.Valid)), nil
	})
	register(4, 2, "passphrase", func(input string) (string, error) {
		return itoa(day04.CountValid(input, day04.ValidNoAnagrams)), nil
	})

	register(5, 1, "maze", func(input string) (string, error) {
		maze, err := numutil.NumberLines(input)
		if err != nil {
			return "", err
		}
		return itoa(day05.StepsToExit(maze)), nil
	})
	register(5, 2, "maze", func(input string) (string, error) {
		maze, err := numutil.NumberLines(input)
		if err != nil {
			return "", err
		}
		return itoa(day05.StepsToExitStrange(maze)), nil
	})

	register(6, 1, "memory", func(input string) (string, error) {
		banks, err := parseBanks(input)
		if err != nil {
			return "", err
		}
		return itoa(day06.CyclesUntilRepeat(banks)), nil
	})
	register(6, 2, "memory", func(input string) (string, error) {
		banks, err := parseBanks(input)
		if err != nil {
			return "", err
		}
		return itoa(day06.LoopLength(banks)), nil
	})

	register(7, 1, "tower", func(input string) (string, error) {
		tower, err := day07.ParseTower(input)
		if err != nil {
			return "", err
		}
		return tower.Base(), nil
	})
	register(7, 2, "tower", func(input string) (string, error) {
		tower, err := day07.ParseTower(input)
		if err != nil {
			return "", err
		}
		weight, err := tower.CorrectedWeight()
		if err != nil {
			return "", err
		}
		return itoa(weight), nil
	})

	register(8, 1, "interpret", func(input string) (string, error) {
		interpreter, err := day08.Parse(input)
		if err != nil {
			return "", err
		}
		interpreter.Run()
		return itoa(interpreter.LargestRegister()), nil
	})
	register(8, 2, "interpret", func(input string) (string, error) {
		interpreter, err := day08.Parse(input)
		if err != nil {
			return "", err
		}
		interpreter.Run()
		return itoa(interpreter.LargestEver()), nil
	})

	register(9, 1, "stream", func(input string) (string, error) {
		result, err := day09.Process(strings.TrimSpace(input))
		if err != nil {
			return "", err
		}
		return itoa(result.Score), nil
	})
	register(9, 2, "stream", func(input string) (string, error) {
		result, err := day09.Process(strings.TrimSpace(input))
		if err != nil {
			return "", err
		}
		return itoa(result.Garbage), nil
	})

	register(10, 1, "knothash", func(input string) (string, error) {
		fingerprint, err := day10.RoundFingerprint(input)
		if err != nil {
			return "", err
		}
		return itoa(fingerprint), nil
	})
	register(10, 2, "knothash", func(input string) (string, error) {
		return day10.HashString(strings.TrimSpace(input)), nil
	})

	register(11, 1, "hexgrid", func(input string) (string, error) {
		walk, err := day11.Follow(input)
		if err != nil {
			return "", err
		}
		return itoa(walk.Distance), nil
	})
	register(11, 2, "hexgrid", func(input string) (string, error) {
		walk, err := day11.Follow(input)
		if err != nil {
			return "", err
		}
		return itoa(walk.Furthest), nil
	})

	register(12, 1, "pipes", func(input string) (string, error) {
		graph, err := day12.ParseGraph(input)
		if err != nil {
			return "", err
		}
		return itoa(len(graph.Group(0))), nil
	})
	register(12, 2, "pipes", func(input string) (string, error) {
		graph, err := day12.ParseGraph(input)
		if err != nil {
			return "", err
		}
		return itoa(graph.GroupCount()), nil
	})

	register(13, 1, "firewall", func(input string) (string, error) {
		firewall, err := day13.ParseFirewall(input)
		if err != nil {
			return "", err
		}
		return itoa(firewall.Severity()), nil
	})
	register(13, 2, "firewall", func(input string) (string, error) {
		firewall, err := day13.ParseFirewall(input)
		if err != nil {
			return "", err
		}
		return itoa(firewall.SafeDelay()), nil
	})

	register(14, 1, "defragment", func(input string) (string, error) {
		return itoa(day14.UsedSquares(strings.TrimSpace(input))), nil
	})
	register(14, 2, "defragment", func(input string) (string, error) {
		grid := day14.BuildGrid(strings.TrimSpace(input))
		return itoa(grid.Regions()), nil
	})

	register(15, 1, "generator", func(input string) (string, error) {
		a, b, err := day15.ParseSeeds(input)
		if err != nil {
			return "", err
		}
		count := day15.Judge(
			day15.NewGenerator(a, day15.FactorA),
			day15.NewGenerator(b, day15.FactorB),
			day15.Rounds)
		return itoa(count), nil
	})
	register(15, 2, "generator", func(input string) (string, error) {
		a, b, err := day15.ParseSeeds(input)
		if err != nil {
			return "", err
		}
		count := day15.JudgePicky(
			day15.NewGenerator(a, day15.FactorA),
			day15.NewGenerator(b, day15.FactorB),
			day15.PickyRounds)
		return itoa(count), nil
	})

	register(16, 1, "dance", func(input string) (string, error) {
		moves, err := day16.ParseMoves(input)
		if err != nil {
			return "", err
		}
		return day16.Dance(moves, 16), nil
	})
	register(16, 2, "dance", func(input string) (string, error) {
		moves, err := day16.ParseMoves(input)
		if err != nil {
			return "", err
		}
		return day16.DanceRepeated(moves, 16, 1_000_000_000), nil
	})

	register(17, 1, "spinlock", func(input string) (string, error) {
		step, err := atoi(input)
		if err != nil {
			return "", err
		}
		return itoa(day17.NextValue(step, 2017)), nil
	})
	register(17, 2, "spinlock", func(input string) (string, error) {
		step, err := atoi(input)
		if err != nil {
			return "", err
		}
		return itoa(day17.AfterZero(step, 50_000_000)), nil
	})

	register(18, 1, "duet", func(input string) (string, error) {
		instructions, err := day18.Parse(input)
		if err != nil {
			return "", err
		}
		recovered, err := day18.FirstRecovered(instructions)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(recovered, 10), nil
	})
	register(18, 2, "duet", func(input string) (string, error) {
		instructions, err := day18.Parse(input)
		if err != nil {
			return "", err
		}
		sends, err := day18.CountSends(instructions)
		if err != nil {
			return "", err
		}
		return itoa(sends), nil
	})

	register(19, 1, "route", func(input string) (string, error) {
		trace, err := day19.Navigate(input)
		if err != nil {
			return "", err
		}
		return trace.Letters, nil
	})
	register(19, 2, "route", func(input string) (string, error) {
		trace, err := day19.Navigate(input)
		if err != nil {
			return "", err
		}
		return itoa(trace.Steps), nil
	})

	register(20, 1, "particles", func(input string) (string, error) {
		particles, err := day20.ParseParticles(input)
		if err != nil {
			return "", err
		}
		return itoa(day20.ClosestLongTerm(particles)), nil
	})
	register(20, 2, "particles", func(input string) (string, error) {
		particles, err := day20.ParseParticles(input)
		if err != nil {
			return "", err
		}
		return itoa(day20.Survivors(particles)), nil
	})

	register(21, 1, "enhance", func(input string) (string, error) {
		rules, err := day21.ParseRules(input)
		if err != nil {
			return "", err
		}
		lit, err := rules.LitPixels(5)
		if err != nil {
			return "", err
		}
		return itoa(lit), nil
	})
	register(21, 2, "enhance", func(input string) (string, error) {
		rules, err := day21.ParseRules(input)
		if err != nil {
			return "", err
		}
		lit, err := rules.LitPixels(18)
		if err != nil {
			return "", err
		}
		return itoa(lit), nil
	})

	register(22, 1, "virus", func(input string) (string, error) {
		count, err := day22.CountInfections(input, 10_000)
		if err != nil {
			return "", err
		}
		return itoa(count), nil
	})
	register(22, 2, "virus", func(input string) (string, error) {
		count, err := day22.CountEvolvedInfections(input, 10_000_000)
		if err != nil {
			return "", err
		}
		return itoa(count), nil
	})

	register(23, 1, "coprocessor", func(input string) (string, error) {
		instructions, err := day23.Parse(input)
		if err != nil {
			return "", err
		}
		muls, err := day23.CountMuls(instructions)
		if err != nil {
			return "", err
		}
		return itoa(muls), nil
	})
	register(23, 2, "coprocessor", func(input string) (string, error) {
		seed, err := coprocessorSeed(input)
		if err != nil {
			return "", err
		}
		return itoa(day23.CompositeCount(seed)), nil
	})

	register(24, 1, "bridge", func(input string) (string, error) {
		components, err := day24.ParseComponents(input)
		if err != nil {
			return "", err
		}
		return itoa(day24.Strongest(components)), nil
	})
	register(24, 2, "bridge", func(input string) (string, error) {
		components, err := day24.ParseComponents(input)
		if err != nil {
			return "", err
		}
		return itoa(day24.LongestStrength(components)), nil
	})

	register(25, 1, "turing", func(input string) (string, error) {
		machine, err := day25.ParseBlueprint(input)
		if err != nil {
			return "", err
		}
		checksum, err := machine.Checksum()
		if err != nil {
			return "", err
		}
		return itoa(checksum), nil
	})
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func atoi(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("parse number: %w", err)
	}
	return n, nil
}

// parseBanks reads a single line of whitespace-separated bank sizes.
func parseBanks(input string) ([]int, error) {
	table, err := numutil.NumberTable(input)
	if err != nil {
		return nil, err
	}
	if len(table) != 1 {
		return nil, fmt.Errorf("want one line of banks, got %d", len(table))
	}
	return table[0], nil
}

// coprocessorSeed extracts the initial b value the composite scan is
// parameterized on: the literal of the program's leading "set b N".
func coprocessorSeed(input string) (int, error) {
	instructions, err := day23.Parse(input)
	if err != nil {
		return 0, err
	}
	for _, instr := range instructions {
		if instr.Op == "set" && instr.X.Register() == "b" {
			return int(instr.Y.Value(processor.Environment{})), nil
		}
	}
	return 0, fmt.Errorf("program never seeds register b")
}
