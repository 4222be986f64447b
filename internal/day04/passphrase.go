// Package day04 validates passphrases against duplicate-word and
// anagram policies.
package day04

import (
	"sort"
	"strings"

	"advent2017/internal/numutil"
)

// Valid reports whether the passphrase contains no duplicate words.
func Valid(words []string) bool {
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if _, ok := seen[word]; ok {
			return false
		}
		seen[word] = struct{}{}
	}
	return true
}

// ValidNoAnagrams reports whether no word of the passphrase is an
// anagram of another.
func ValidNoAnagrams(words []string) bool {
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		key := sortLetters(word)
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// CountValid counts the passphrases in input (one per line) accepted by
// the validator.
func CountValid(input string, validator func([]string) bool) int {
	count := 0
	for _, line := range numutil.Lines(input) {
		words := strings.Fields(line)
		if len(words) > 0 && validator(words) {
			count++
		}
	}
	return count
}

func sortLetters(word string) string {
	letters := strings.Split(word, "")
	sort.Strings(letters)
	return strings.Join(letters, "")
}
