package utils_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/aoc/internal/utils"
)

func TestFormatFileSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "negative", bytes: -1, expected: "0b"},
		{name: "zero", bytes: 0, expected: "0b"},
		{name: "bytes", bytes: 584, expected: "584b"},
		{name: "one kilobyte", bytes: 1024, expected: "1kb"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5kb"},
		{name: "ten megabytes", bytes: 10 * 1024 * 1024, expected: "10mb"},
		{name: "largest byte count", bytes: 1023, expected: "1023b"},
		{name: "example root", bytes: 48381165, expected: "46mb"},
		{name: "rounds into ten", bytes: 10230, expected: "10kb"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.FormatFileSize(testCase.bytes)
			if result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}

func TestSumMaxMin(t *testing.T) {
	values := []int64{6000, 4000, 11000, 24000, 10000}
	if got := utils.Sum(values); got != 55000 {
		t.Fatalf("Sum = %d, want 55000", got)
	}
	if got := utils.Max(values); got != 24000 {
		t.Fatalf("Max = %d, want 24000", got)
	}
	if got := utils.Min(values); got != 4000 {
		t.Fatalf("Min = %d, want 4000", got)
	}
	if got := utils.Max([]int{}); got != 0 {
		t.Fatalf("Max of empty slice = %d, want 0", got)
	}
}

func TestTopN(t *testing.T) {
	testCases := []struct {
		name     string
		values   []int
		n        int
		expected []int
	}{
		{name: "top three", values: []int{6000, 4000, 11000, 24000, 10000}, n: 3, expected: []int{24000, 11000, 10000}},
		{name: "fewer values than n", values: []int{1, 2}, n: 3, expected: []int{2, 1}},
		{name: "duplicates kept", values: []int{5, 5, 1, 5}, n: 2, expected: []int{5, 5}},
		{name: "zero n", values: []int{1}, n: 0, expected: nil},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if diff := cmp.Diff(testCase.expected, utils.TopN(testCase.values, testCase.n)); diff != "" {
				t.Fatalf("TopN mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for input, expected := range testCases {
		if got := utils.ParseLogLevel(input); got != expected {
			t.Fatalf("ParseLogLevel(%q) = %v, want %v", input, got, expected)
		}
	}
}
