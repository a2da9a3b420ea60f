package days

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	packetMarkerLength  = 4
	messageMarkerLength = 14
)

// markerEnd returns how many characters have been read when the last
// windowLength characters are first all distinct.
func markerEnd(signal string, windowLength int) (int, error) {
	characters := []rune(strings.TrimSpace(signal))
	lastSeen := make(map[rune]int)
	windowStart := 0
	for index, character := range characters {
		if previous, seen := lastSeen[character]; seen && previous >= windowStart {
			windowStart = previous + 1
		}
		lastSeen[character] = index
		if index-windowStart+1 == windowLength {
			return index + 1, nil
		}
	}
	return 0, fmt.Errorf("no run of %d distinct characters in %d character signal", windowLength, len(characters))
}

func tuningTrouble() Day {
	solve := func(windowLength int) Solution {
		return func(input string) (string, error) {
			end, markerError := markerEnd(input, windowLength)
			if markerError != nil {
				return "", markerError
			}
			return strconv.Itoa(end), nil
		}
	}
	return Day{
		Number:  6,
		Title:   "Tuning Trouble",
		PartOne: solve(packetMarkerLength),
		PartTwo: solve(messageMarkerLength),
	}
}
