// Package readingtime estimates how long an article takes to read.
package readingtime

import "strings"

// WordsPerMinute is the assumed average reading speed.
const WordsPerMinute = 200

// Estimate returns the reading time of body in whole minutes, rounding up.
// Words are maximal runs of non-whitespace. An empty body estimates to 1.
func Estimate(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 1
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
