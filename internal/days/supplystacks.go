package days

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	crateColumnWidth  = 4
	crateLabelOffset  = 1
	sectionSeparator  = "\n\n"
	moveWord          = "move"
	fromWord          = "from"
	toWord            = "to"
	instructionFields = 6
)

type crateMove struct {
	count int
	from  int
	to    int
}

// crateYard holds stacks bottom to top, indexed from zero.
type crateYard struct {
	stacks [][]rune
}

func parseCrateYard(diagram string) (*crateYard, error) {
	lines := strings.Split(strings.TrimRight(diagram, "\n"), "\n")
	if len(lines) < 1 {
		return nil, fmt.Errorf("crate diagram is empty")
	}
	labels := strings.Fields(lines[len(lines)-1])
	if len(labels) == 0 {
		return nil, fmt.Errorf("crate diagram has no stack labels")
	}
	for index, label := range labels {
		if label != strconv.Itoa(index+1) {
			return nil, fmt.Errorf("unexpected stack label %q at position %d", label, index+1)
		}
	}
	yard := &crateYard{stacks: make([][]rune, len(labels))}
	for lineIndex := len(lines) - 2; lineIndex >= 0; lineIndex-- {
		row := []rune(lines[lineIndex])
		for stackIndex := range yard.stacks {
			position := stackIndex*crateColumnWidth + crateLabelOffset
			if position >= len(row) || row[position] == ' ' {
				continue
			}
			if row[position-1] != '[' || position+1 >= len(row) || row[position+1] != ']' {
				return nil, fmt.Errorf("malformed crate in row %q", lines[lineIndex])
			}
			yard.stacks[stackIndex] = append(yard.stacks[stackIndex], row[position])
		}
	}
	return yard, nil
}

func parseCrateMoves(text string) ([]crateMove, error) {
	var moves []crateMove
	for _, line := range nonEmptyLines(text) {
		fields := strings.Fields(line)
		if len(fields) != instructionFields || fields[0] != moveWord || fields[2] != fromWord || fields[4] != toWord {
			return nil, fmt.Errorf("invalid instruction %q", line)
		}
		var numbers [3]int
		for numberIndex, field := range []string{fields[1], fields[3], fields[5]} {
			value, parseError := strconv.Atoi(field)
			if parseError != nil {
				return nil, fmt.Errorf("invalid instruction %q: %w", line, parseError)
			}
			numbers[numberIndex] = value
		}
		moves = append(moves, crateMove{count: numbers[0], from: numbers[1] - 1, to: numbers[2] - 1})
	}
	return moves, nil
}

// apply moves crates between stacks. With preserveOrder the moved crates keep
// their relative order, otherwise they are moved one at a time.
func (yard *crateYard) apply(move crateMove, preserveOrder bool) error {
	if move.from < 0 || move.from >= len(yard.stacks) || move.to < 0 || move.to >= len(yard.stacks) {
		return fmt.Errorf("move references unknown stack: %+v", move)
	}
	source := yard.stacks[move.from]
	if move.count < 0 || move.count > len(source) {
		return fmt.Errorf("cannot move %d crates from stack %d holding %d", move.count, move.from+1, len(source))
	}
	moved := append([]rune(nil), source[len(source)-move.count:]...)
	yard.stacks[move.from] = source[:len(source)-move.count]
	if !preserveOrder {
		for left, right := 0, len(moved)-1; left < right; left, right = left+1, right-1 {
			moved[left], moved[right] = moved[right], moved[left]
		}
	}
	yard.stacks[move.to] = append(yard.stacks[move.to], moved...)
	return nil
}

func (yard *crateYard) tops() string {
	var builder strings.Builder
	for _, stack := range yard.stacks {
		if len(stack) > 0 {
			builder.WriteRune(stack[len(stack)-1])
		}
	}
	return builder.String()
}

func rearrangeCrates(input string, preserveOrder bool) (string, error) {
	normalized := strings.ReplaceAll(input, "\r\n", "\n")
	diagram, instructions, found := strings.Cut(normalized, sectionSeparator)
	if !found {
		return "", fmt.Errorf("missing blank line between crate diagram and instructions")
	}
	yard, yardError := parseCrateYard(diagram)
	if yardError != nil {
		return "", yardError
	}
	moves, movesError := parseCrateMoves(instructions)
	if movesError != nil {
		return "", movesError
	}
	for _, move := range moves {
		if applyError := yard.apply(move, preserveOrder); applyError != nil {
			return "", applyError
		}
	}
	return yard.tops(), nil
}

func supplyStacks() Day {
	return Day{
		Number: 5,
		Title:  "Supply Stacks",
		PartOne: func(input string) (string, error) {
			return rearrangeCrates(input, false)
		},
		PartTwo: func(input string) (string, error) {
			return rearrangeCrates(input, true)
		},
	}
}
