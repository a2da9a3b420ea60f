package days

import (
	"strconv"

	"github.com/temirov/aoc/internal/heightmap"
)

func treetopTreeHouse() Day {
	return Day{
		Number: 8,
		Title:  "Treetop Tree House",
		PartOne: func(input string) (string, error) {
			heightMap, parseError := heightmap.Parse(input)
			if parseError != nil {
				return "", parseError
			}
			return strconv.Itoa(heightMap.VisibleCount()), nil
		},
		PartTwo: func(input string) (string, error) {
			heightMap, parseError := heightmap.Parse(input)
			if parseError != nil {
				return "", parseError
			}
			return strconv.Itoa(heightMap.BestScenicScore()), nil
		},
	}
}
