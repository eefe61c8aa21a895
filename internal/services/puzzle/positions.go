package puzzle

import (
	"slices"
	"unicode/utf8"

	"github.com/mcoot/missingletters/internal/dependencies/random"
)

// Bounds on the number of hidden letters per word
const (
	MinMissing = 1
	MaxMissing = 3
)

// MissingCount returns how many letters to hide in a word of the given length:
// one per four letters, clamped to [MinMissing, MaxMissing]
func MissingCount(length int) int {
	return min(MaxMissing, max(MinMissing, length/4))
}

// ChooseMissingPositions picks which letters of word to hide. It never picks
// the first or last letter unless the word is too short to have an interior.
// The result is sorted ascending; slot order follows it.
func ChooseMissingPositions(word string, rnd random.Random) []int {
	length := utf8.RuneCountInString(word)
	if length == 0 {
		return nil
	}
	numMissing := MissingCount(length)

	positions := make([]int, length)
	for i := range positions {
		positions[i] = i
	}
	random.Shuffle(rnd, length, func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	selected := make([]int, 0, numMissing)
	for _, idx := range positions {
		if len(selected) >= numMissing {
			break
		}
		if idx != 0 && idx != length-1 {
			selected = append(selected, idx)
		}
	}

	// Only reachable for words of length <= 2
	if len(selected) == 0 {
		selected = append(selected, 1%length)
	}

	slices.Sort(selected)
	return selected
}
