package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/temirov/aoc/internal/utils"
)

func calorieCounting() Day {
	return Day{
		Number: 1,
		Title:  "Calorie Counting",
		PartOne: func(input string) (string, error) {
			totals, parseError := parseElfTotals(input)
			if parseError != nil {
				return "", parseError
			}
			return strconv.FormatUint(utils.Max(totals), 10), nil
		},
		PartTwo: func(input string) (string, error) {
			totals, parseError := parseElfTotals(input)
			if parseError != nil {
				return "", parseError
			}
			return strconv.FormatUint(utils.Sum(utils.TopN(totals, 3)), 10), nil
		},
	}
}

// parseElfTotals sums each blank-line separated group of calorie counts.
func parseElfTotals(input string) ([]uint64, error) {
	var totals []uint64
	var current uint64
	inGroup := false
	for lineIndex, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if inGroup {
				totals = append(totals, current)
			}
			current, inGroup = 0, false
			continue
		}
		calories, parseError := strconv.ParseUint(trimmed, 10, 64)
		if parseError != nil {
			return nil, fmt.Errorf("line %d: %w", lineIndex+1, parseError)
		}
		current += calories
		inGroup = true
	}
	if inGroup {
		totals = append(totals, current)
	}
	return totals, nil
}
