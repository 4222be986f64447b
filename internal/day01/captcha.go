// Package day01 solves the inverse captcha puzzle: summing digits that
// match the digit a fixed distance ahead in a circular sequence.
package day01

// Captcha sums every digit that matches the next digit in the circular
// sequence.
func Captcha(digits []int) int {
	return captchaAt(digits, 1)
}

// HalfwayCaptcha sums every digit that matches the digit halfway around
// the circular sequence.
func HalfwayCaptcha(digits []int) int {
	return captchaAt(digits, len(digits)/2)
}

func captchaAt(digits []int, offset int) int {
	if len(digits) == 0 {
		return 0
	}
	sum := 0
	for i, d := range digits {
		if d == digits[(i+offset)%len(digits)] {
			sum += d
		}
	}
	return sum
}
