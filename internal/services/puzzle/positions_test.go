package puzzle

import (
	"testing"

	"github.com/mcoot/missingletters/internal/dependencies/mocks"
	"github.com/mcoot/missingletters/internal/dependencies/random"
	"github.com/mcoot/missingletters/internal/services/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingCount(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{1, 1},
		{3, 1},
		{6, 1},
		{7, 1},
		{8, 2},
		{10, 2},
		{12, 3},
		{20, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MissingCount(tt.length), "length %d", tt.length)
	}
}

func TestChooseMissingPositionsPlanet(t *testing.T) {
	rnd := mocks.NewMockRandom()
	// Shuffles 0..5 into [5 4 2 0 1 3]; 5 is the last letter so 4 is picked
	rnd.QueueIntn(3, 1, 0, 2, 1)

	positions := ChooseMissingPositions("planet", rnd)

	assert.Equal(t, []int{4}, positions)
}

func TestChooseMissingPositionsJavascriptSorted(t *testing.T) {
	rnd := mocks.NewMockRandom()
	// Shuffles 0..9 into [8 5 6 4 9 0 1 7 3 2]; 8 then 5 are picked
	rnd.QueueIntn(2, 3, 7, 1, 0, 2, 2, 1, 0)

	positions := ChooseMissingPositions("javascript", rnd)

	assert.Equal(t, []int{5, 8}, positions)
}

func TestChooseMissingPositionsIdentityShuffle(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.QueueIdentityShuffle(13)

	positions := ChooseMissingPositions("international", rnd)

	assert.Equal(t, []int{1, 2, 3}, positions)
	assert.Zero(t, rnd.Pending())
}

func TestChooseMissingPositionsShortWords(t *testing.T) {
	rnd := mocks.NewMockRandom()

	assert.Equal(t, []int{1}, ChooseMissingPositions("ab", rnd))
	assert.Equal(t, []int{0}, ChooseMissingPositions("a", rnd))
	assert.Equal(t, []int{1}, ChooseMissingPositions("abc", rnd))
	assert.Empty(t, ChooseMissingPositions("", rnd))
}

func TestChooseMissingPositionsDefaultWords(t *testing.T) {
	rnd := random.NewSeeded(7)

	for _, word := range wordlist.Default() {
		for trial := 0; trial < 50; trial++ {
			positions := ChooseMissingPositions(word, rnd)

			require.Len(t, positions, MissingCount(len(word)), word)
			require.GreaterOrEqual(t, len(positions), MinMissing)
			require.LessOrEqual(t, len(positions), MaxMissing)
			for i, pos := range positions {
				assert.Greater(t, pos, 0, word)
				assert.Less(t, pos, len(word)-1, word)
				if i > 0 {
					assert.Greater(t, pos, positions[i-1], "positions must be distinct and ascending for %s", word)
				}
			}
		}
	}
}
