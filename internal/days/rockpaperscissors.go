package days

import (
	"fmt"
	"strconv"
	"strings"
)

type shape int

const (
	rock shape = iota
	paper
	scissors
)

const (
	lossScore = 0
	drawScore = 3
	winScore  = 6
)

var opponentShapes = map[string]shape{"A": rock, "B": paper, "C": scissors}

var responseShapes = map[string]shape{"X": rock, "Y": paper, "Z": scissors}

// desiredOutcomes maps the second column to the points the round must yield.
var desiredOutcomes = map[string]int{"X": lossScore, "Y": drawScore, "Z": winScore}

func (value shape) score() int {
	return int(value) + 1
}

// beats returns the shape that value defeats.
func (value shape) beats() shape {
	return (value + 2) % 3
}

// losesTo returns the shape that defeats value.
func (value shape) losesTo() shape {
	return (value + 1) % 3
}

func roundScore(opponent shape, response shape) int {
	switch {
	case opponent == response:
		return response.score() + drawScore
	case response.beats() == opponent:
		return response.score() + winScore
	default:
		return response.score() + lossScore
	}
}

func responseFor(opponent shape, outcome int) shape {
	switch outcome {
	case winScore:
		return opponent.losesTo()
	case lossScore:
		return opponent.beats()
	default:
		return opponent
	}
}

func rockPaperScissors() Day {
	return Day{
		Number: 2,
		Title:  "Rock Paper Scissors",
		PartOne: func(input string) (string, error) {
			return scoreStrategyGuide(input, func(opponent shape, column string) (int, bool) {
				response, known := responseShapes[column]
				if !known {
					return 0, false
				}
				return roundScore(opponent, response), true
			})
		},
		PartTwo: func(input string) (string, error) {
			return scoreStrategyGuide(input, func(opponent shape, column string) (int, bool) {
				outcome, known := desiredOutcomes[column]
				if !known {
					return 0, false
				}
				return roundScore(opponent, responseFor(opponent, outcome)), true
			})
		},
	}
}

func scoreStrategyGuide(input string, score func(opponent shape, column string) (int, bool)) (string, error) {
	total := 0
	for _, line := range nonEmptyLines(input) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return "", fmt.Errorf("invalid round %q", line)
		}
		opponent, known := opponentShapes[fields[0]]
		if !known {
			return "", fmt.Errorf("invalid opponent shape %q in round %q", fields[0], line)
		}
		points, valid := score(opponent, fields[1])
		if !valid {
			return "", fmt.Errorf("invalid second column %q in round %q", fields[1], line)
		}
		total += points
	}
	return strconv.Itoa(total), nil
}
