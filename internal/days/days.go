// Package days registers the solver for each puzzle day and dispatches
// day/part pairs to them.
package days

import (
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/aoc/internal/filesystem"
)

const (
	// PartOne selects the first half of a puzzle.
	PartOne = 1
	// PartTwo selects the second half of a puzzle.
	PartTwo = 2

	// DefaultSmallDirectoryLimit is the largest directory counted by day 7 part one.
	DefaultSmallDirectoryLimit int64 = 100000
	// DefaultDiskCapacity is the simulated disk size for day 7 part two.
	DefaultDiskCapacity int64 = 70000000
	// DefaultRequiredFreeSpace is the free space day 7 part two must reach.
	DefaultRequiredFreeSpace int64 = 30000000

	errorDayNotImplementedFormat = "%w: day %d"
	errorInvalidPartFormat       = "%w: %d"
	errorSolveFormat             = "day %d part %d: %w"
)

var (
	// ErrDayNotImplemented is returned for days without a registered solver.
	ErrDayNotImplemented = errors.New("day is not implemented")
	// ErrInvalidPart is returned for parts other than one and two.
	ErrInvalidPart = errors.New("invalid part number")
)

// Solution computes the answer for one part of a puzzle.
type Solution func(input string) (string, error)

// Day bundles both parts of a puzzle.
type Day struct {
	Number  int
	Title   string
	PartOne Solution
	PartTwo Solution
}

// Part returns the solution for part one or two.
func (day Day) Part(part int) (Solution, error) {
	switch part {
	case PartOne:
		return day.PartOne, nil
	case PartTwo:
		return day.PartTwo, nil
	default:
		return nil, fmt.Errorf(errorInvalidPartFormat, ErrInvalidPart, part)
	}
}

// Options tunes the solvers that expose parameters.
type Options struct {
	SmallDirectoryLimit int64
	DiskCapacity        int64
	RequiredFreeSpace   int64
}

// DefaultOptions returns the puzzle's published parameters.
func DefaultOptions() Options {
	return Options{
		SmallDirectoryLimit: DefaultSmallDirectoryLimit,
		DiskCapacity:        DefaultDiskCapacity,
		RequiredFreeSpace:   DefaultRequiredFreeSpace,
	}
}

// Registry holds the ordered list of implemented days.
type Registry struct {
	days []Day
}

// NewRegistry builds the registry of every implemented day.
func NewRegistry(options Options) *Registry {
	return &Registry{days: []Day{
		calorieCounting(),
		rockPaperScissors(),
		rucksackReorganization(),
		campCleanup(),
		supplyStacks(),
		tuningTrouble(),
		noSpaceLeftOnDevice(options),
		treetopTreeHouse(),
	}}
}

// Days returns all registered days in order.
func (registry *Registry) Days() []Day {
	return append([]Day(nil), registry.days...)
}

// Lookup returns the registered day with the given number.
func (registry *Registry) Lookup(number int) (Day, error) {
	for _, day := range registry.days {
		if day.Number == number {
			return day, nil
		}
	}
	return Day{}, fmt.Errorf(errorDayNotImplementedFormat, ErrDayNotImplemented, number)
}

// Solve runs one part of one day against input.
func (registry *Registry) Solve(number int, part int, input string) (string, error) {
	day, lookupError := registry.Lookup(number)
	if lookupError != nil {
		return "", lookupError
	}
	solution, partError := day.Part(part)
	if partError != nil {
		return "", partError
	}
	answer, solveError := solution(input)
	if solveError != nil {
		return "", fmt.Errorf(errorSolveFormat, number, part, solveError)
	}
	return answer, nil
}

// nonEmptyLines splits input into lines, dropping blank ones.
func nonEmptyLines(input string) []string {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func noSpaceLeftOnDevice(options Options) Day {
	return Day{
		Number: 7,
		Title:  "No Space Left On Device",
		PartOne: func(input string) (string, error) {
			fileSystem, buildError := filesystem.FromTranscript(input)
			if buildError != nil {
				return "", buildError
			}
			sum, sumError := fileSystem.SumAtMost(options.SmallDirectoryLimit)
			if sumError != nil {
				return "", sumError
			}
			return fmt.Sprint(sum), nil
		},
		PartTwo: func(input string) (string, error) {
			fileSystem, buildError := filesystem.FromTranscript(input)
			if buildError != nil {
				return "", buildError
			}
			needed, neededError := fileSystem.SpaceToFree(options.DiskCapacity, options.RequiredFreeSpace)
			if neededError != nil {
				return "", neededError
			}
			smallest, smallestError := fileSystem.SmallestAtLeast(needed)
			if smallestError != nil {
				return "", smallestError
			}
			return fmt.Sprint(smallest), nil
		},
	}
}
