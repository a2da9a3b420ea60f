// Package utils contains general helper functions used across the aoc tool.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Number covers every built-in integer and floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds all values together.
func Sum[T Number](values []T) T {
	var total T
	for _, value := range values {
		total += value
	}
	return total
}

// Max returns the largest value, or the zero value for an empty slice.
func Max[T constraints.Ordered](values []T) T {
	var result T
	for index, value := range values {
		if index == 0 || value > result {
			result = value
		}
	}
	return result
}

// Min returns the smallest value, or the zero value for an empty slice.
func Min[T constraints.Ordered](values []T) T {
	var result T
	for index, value := range values {
		if index == 0 || value < result {
			result = value
		}
	}
	return result
}

// TopN returns the n largest values in descending order. The input is not modified.
func TopN[T constraints.Ordered](values []T, n int) []T {
	if n <= 0 {
		return nil
	}
	top := make([]T, 0, n+1)
	for _, value := range values {
		insertAt := len(top)
		for insertAt > 0 && top[insertAt-1] < value {
			insertAt--
		}
		if insertAt >= n {
			continue
		}
		top = append(top, value)
		copy(top[insertAt+1:], top[insertAt:])
		top[insertAt] = value
		if len(top) > n {
			top = top[:n]
		}
	}
	return top
}
