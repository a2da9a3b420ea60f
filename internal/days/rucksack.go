package days

import (
	"fmt"
	"strconv"
)

const badgeGroupSize = 3

// itemSet records which of the 52 item types are present.
type itemSet uint64

func newItemSet(items string) (itemSet, error) {
	var set itemSet
	for _, item := range items {
		priority, priorityError := itemPriority(item)
		if priorityError != nil {
			return 0, priorityError
		}
		set |= 1 << priority
	}
	return set, nil
}

// prioritySum adds the priorities of every item type in the set.
func (set itemSet) prioritySum() int {
	total := 0
	for priority := 1; priority <= 52; priority++ {
		if set&(1<<priority) != 0 {
			total += priority
		}
	}
	return total
}

func itemPriority(item rune) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	default:
		return 0, fmt.Errorf("invalid item %q", item)
	}
}

func rucksackReorganization() Day {
	return Day{
		Number: 3,
		Title:  "Rucksack Reorganization",
		PartOne: func(input string) (string, error) {
			total := 0
			for _, line := range nonEmptyLines(input) {
				if len(line)%2 != 0 {
					return "", fmt.Errorf("rucksack %q has an odd number of items", line)
				}
				first, firstError := newItemSet(line[:len(line)/2])
				if firstError != nil {
					return "", firstError
				}
				second, secondError := newItemSet(line[len(line)/2:])
				if secondError != nil {
					return "", secondError
				}
				total += (first & second).prioritySum()
			}
			return strconv.Itoa(total), nil
		},
		PartTwo: func(input string) (string, error) {
			lines := nonEmptyLines(input)
			if len(lines)%badgeGroupSize != 0 {
				return "", fmt.Errorf("%d rucksacks cannot be split into groups of %d", len(lines), badgeGroupSize)
			}
			total := 0
			for groupStart := 0; groupStart < len(lines); groupStart += badgeGroupSize {
				common := ^itemSet(0)
				for _, line := range lines[groupStart : groupStart+badgeGroupSize] {
					set, setError := newItemSet(line)
					if setError != nil {
						return "", setError
					}
					common &= set
				}
				total += common.prioritySum()
			}
			return strconv.Itoa(total), nil
		},
	}
}
