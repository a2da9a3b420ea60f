// Package heightmap models a rectangular grid of single-digit tree heights.
package heightmap

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyGrid is returned when the input holds no rows.
	ErrEmptyGrid = errors.New("height map is empty")
	// ErrRaggedGrid is returned when rows have different widths.
	ErrRaggedGrid = errors.New("height map rows differ in width")
	// ErrInvalidHeight is returned for cells that are not decimal digits.
	ErrInvalidHeight = errors.New("height map cell is not a digit")
)

// HeightMap stores heights row by row.
type HeightMap struct {
	heights [][]uint8
}

// Parse reads one row per line, one digit per cell.
func Parse(input string) (*HeightMap, error) {
	var heights [][]uint8
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row := make([]uint8, 0, len(line))
		for column, cell := range line {
			if cell < '0' || cell > '9' {
				return nil, fmt.Errorf("row %d column %d %q: %w", len(heights)+1, column+1, cell, ErrInvalidHeight)
			}
			row = append(row, uint8(cell-'0'))
		}
		if len(heights) > 0 && len(row) != len(heights[0]) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", len(heights)+1, len(row), len(heights[0]), ErrRaggedGrid)
		}
		heights = append(heights, row)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, fmt.Errorf("reading height map: %w", scanError)
	}
	if len(heights) == 0 {
		return nil, ErrEmptyGrid
	}
	return &HeightMap{heights: heights}, nil
}

// Rows returns the number of rows.
func (heightMap *HeightMap) Rows() int {
	return len(heightMap.heights)
}

// Columns returns the number of columns.
func (heightMap *HeightMap) Columns() int {
	return len(heightMap.heights[0])
}

// Height returns the height at row, column.
func (heightMap *HeightMap) Height(row int, column int) uint8 {
	return heightMap.heights[row][column]
}

// VisibleCount counts trees visible from outside the grid. Every row and
// column is scanned from both ends while tracking the tallest tree seen so far;
// a tree strictly taller than that prefix maximum is visible.
func (heightMap *HeightMap) VisibleCount() int {
	rows, columns := heightMap.Rows(), heightMap.Columns()
	visible := make([][]bool, rows)
	for row := range visible {
		visible[row] = make([]bool, columns)
	}

	scan := func(cells [][2]int) {
		tallest := -1
		for _, cell := range cells {
			height := int(heightMap.heights[cell[0]][cell[1]])
			if height > tallest {
				visible[cell[0]][cell[1]] = true
				tallest = height
			}
		}
	}

	for row := 0; row < rows; row++ {
		line := make([][2]int, columns)
		for column := 0; column < columns; column++ {
			line[column] = [2]int{row, column}
		}
		scan(line)
		scan(reversed(line))
	}
	for column := 0; column < columns; column++ {
		line := make([][2]int, rows)
		for row := 0; row < rows; row++ {
			line[row] = [2]int{row, column}
		}
		scan(line)
		scan(reversed(line))
	}

	count := 0
	for _, visibleRow := range visible {
		for _, isVisible := range visibleRow {
			if isVisible {
				count++
			}
		}
	}
	return count
}

func reversed(cells [][2]int) [][2]int {
	result := make([][2]int, len(cells))
	for index, cell := range cells {
		result[len(cells)-1-index] = cell
	}
	return result
}

var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// ScenicScore multiplies the viewing distances in all four directions from a tree.
// A viewing distance stops at the first tree at least as tall, or at the edge.
func (heightMap *HeightMap) ScenicScore(row int, column int) int {
	height := heightMap.heights[row][column]
	score := 1
	for _, direction := range directions {
		distance := 0
		currentRow, currentColumn := row+direction[0], column+direction[1]
		for currentRow >= 0 && currentRow < heightMap.Rows() && currentColumn >= 0 && currentColumn < heightMap.Columns() {
			distance++
			if heightMap.heights[currentRow][currentColumn] >= height {
				break
			}
			currentRow += direction[0]
			currentColumn += direction[1]
		}
		score *= distance
	}
	return score
}

// BestScenicScore returns the highest scenic score of any tree.
func (heightMap *HeightMap) BestScenicScore() int {
	best := 0
	for row := 0; row < heightMap.Rows(); row++ {
		for column := 0; column < heightMap.Columns(); column++ {
			best = max(best, heightMap.ScenicScore(row, column))
		}
	}
	return best
}

// String renders the grid back to its textual form.
func (heightMap *HeightMap) String() string {
	var builder strings.Builder
	for _, row := range heightMap.heights {
		for _, height := range row {
			builder.WriteByte('0' + height)
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}
