package readingtime

import (
	"strings"
	"testing"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"empty body", "", 1},
		{"whitespace only", "  \t\n  ", 1},
		{"single word", "hello", 1},
		{"exactly 200 words", words(200), 1},
		{"201 words rounds up", words(201), 2},
		{"400 words", words(400), 2},
		{"600 words", words(600), 3},
		{"mixed whitespace", "one\ttwo\nthree  four", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Estimate(tt.body); got != tt.want {
				t.Errorf("Estimate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}
