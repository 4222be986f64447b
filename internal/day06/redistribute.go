// Package day06 simulates memory bank redistribution cycles and
// detects when the configuration repeats.
package day06

import "advent2017/internal/numutil"

// CyclesUntilRepeat counts redistribution cycles until a configuration
// is seen for the second time. The banks slice is modified.
func CyclesUntilRepeat(banks []int) int {
	cycles, _ := detectLoop(banks)
	return cycles
}

// LoopLength counts the cycles in the loop itself: the distance between
// the two sightings of the repeated configuration. The banks slice is
// modified.
func LoopLength(banks []int) int {
	_, length := detectLoop(banks)
	return length
}

func detectLoop(banks []int) (cycles, loop int) {
	seen := map[string]int{}
	for {
		key := numutil.JoinNumbers(banks, ",")
		if first, ok := seen[key]; ok {
			return cycles, cycles - first
		}
		seen[key] = cycles
		redistribute(banks)
		cycles++
	}
}

// redistribute empties the fullest bank and deals its blocks out one at
// a time to the following banks, wrapping around.
func redistribute(banks []int) {
	if len(banks) == 0 {
		return
	}
	iMax := 0
	for i, v := range banks {
		if v > banks[iMax] {
			iMax = i
		}
	}
	blocks := banks[iMax]
	banks[iMax] = 0
	for i := iMax + 1; blocks > 0; i++ {
		banks[i%len(banks)]++
		blocks--
	}
}
