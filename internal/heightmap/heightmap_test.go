package heightmap_test

import (
	"errors"
	"testing"

	"github.com/temirov/aoc/internal/heightmap"
)

const exampleGrid = "30373\n25512\n65332\n33549\n35390\n"

func TestVisibleCount(t *testing.T) {
	heightMap, parseError := heightmap.Parse(exampleGrid)
	if parseError != nil {
		t.Fatalf("Parse error: %v", parseError)
	}
	if got := heightMap.VisibleCount(); got != 21 {
		t.Fatalf("VisibleCount = %d, want 21", got)
	}
}

func TestScenicScores(t *testing.T) {
	heightMap, parseError := heightmap.Parse(exampleGrid)
	if parseError != nil {
		t.Fatalf("Parse error: %v", parseError)
	}
	if got := heightMap.ScenicScore(1, 2); got != 4 {
		t.Fatalf("ScenicScore(1,2) = %d, want 4", got)
	}
	if got := heightMap.ScenicScore(3, 2); got != 8 {
		t.Fatalf("ScenicScore(3,2) = %d, want 8", got)
	}
	if got := heightMap.ScenicScore(0, 0); got != 0 {
		t.Fatalf("edge tree score = %d, want 0", got)
	}
	if got := heightMap.BestScenicScore(); got != 8 {
		t.Fatalf("BestScenicScore = %d, want 8", got)
	}
}

func TestSingleTreeIsVisible(t *testing.T) {
	heightMap, parseError := heightmap.Parse("7")
	if parseError != nil {
		t.Fatalf("Parse error: %v", parseError)
	}
	if heightMap.VisibleCount() != 1 {
		t.Fatalf("expected the only tree to be visible")
	}
}

func TestStringRoundTrip(t *testing.T) {
	heightMap, parseError := heightmap.Parse(exampleGrid)
	if parseError != nil {
		t.Fatalf("Parse error: %v", parseError)
	}
	if heightMap.String() != exampleGrid {
		t.Fatalf("String() = %q, want %q", heightMap.String(), exampleGrid)
	}
	if heightMap.Rows() != 5 || heightMap.Columns() != 5 || heightMap.Height(3, 4) != 9 {
		t.Fatalf("unexpected dimensions or heights")
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "empty", input: "\n\n", expected: heightmap.ErrEmptyGrid},
		{name: "ragged", input: "123\n12\n", expected: heightmap.ErrRaggedGrid},
		{name: "letter", input: "12a\n", expected: heightmap.ErrInvalidHeight},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, parseError := heightmap.Parse(testCase.input)
			if !errors.Is(parseError, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, parseError)
			}
		})
	}
}
