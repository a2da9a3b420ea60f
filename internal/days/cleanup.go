package days

import (
	"fmt"
	"strconv"
	"strings"
)

type sectionRange struct {
	first int
	last  int
}

func (section sectionRange) contains(other sectionRange) bool {
	return section.first <= other.first && section.last >= other.last
}

func (section sectionRange) overlaps(other sectionRange) bool {
	return section.first <= other.last && other.first <= section.last
}

func parseSectionRange(text string) (sectionRange, error) {
	bounds := strings.Split(text, "-")
	if len(bounds) != 2 {
		return sectionRange{}, fmt.Errorf("invalid range %q", text)
	}
	first, firstError := strconv.Atoi(bounds[0])
	if firstError != nil {
		return sectionRange{}, fmt.Errorf("invalid range %q: %w", text, firstError)
	}
	last, lastError := strconv.Atoi(bounds[1])
	if lastError != nil {
		return sectionRange{}, fmt.Errorf("invalid range %q: %w", text, lastError)
	}
	return sectionRange{first: first, last: last}, nil
}

func parseAssignmentPairs(input string) ([][2]sectionRange, error) {
	var pairs [][2]sectionRange
	for _, line := range nonEmptyLines(input) {
		halves := strings.Split(line, ",")
		if len(halves) != 2 {
			return nil, fmt.Errorf("invalid assignment pair %q", line)
		}
		left, leftError := parseSectionRange(halves[0])
		if leftError != nil {
			return nil, leftError
		}
		right, rightError := parseSectionRange(halves[1])
		if rightError != nil {
			return nil, rightError
		}
		pairs = append(pairs, [2]sectionRange{left, right})
	}
	return pairs, nil
}

func countPairs(input string, matches func(left sectionRange, right sectionRange) bool) (string, error) {
	pairs, parseError := parseAssignmentPairs(input)
	if parseError != nil {
		return "", parseError
	}
	count := 0
	for _, pair := range pairs {
		if matches(pair[0], pair[1]) {
			count++
		}
	}
	return strconv.Itoa(count), nil
}

func campCleanup() Day {
	return Day{
		Number: 4,
		Title:  "Camp Cleanup",
		PartOne: func(input string) (string, error) {
			return countPairs(input, func(left sectionRange, right sectionRange) bool {
				return left.contains(right) || right.contains(left)
			})
		},
		PartTwo: func(input string) (string, error) {
			return countPairs(input, sectionRange.overlaps)
		},
	}
}
