package puzzle

import (
	"testing"

	"github.com/mcoot/missingletters/internal/dependencies/mocks"
	"github.com/mcoot/missingletters/internal/dependencies/random"
	"github.com/mcoot/missingletters/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type GameSuite struct {
	suite.Suite
	random *mocks.MockRandom
	game   *Game
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameSuite))
}

func (s *GameSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.game = New([]string{"planet", "javascript"}, s.random)
}

// restart begins a game whose first word is "javascript" with positions 5
// and 8 hidden ("c" and "p")
func (s *GameSuite) restart() {
	s.random.QueueIdentityShuffle(2)
	s.random.QueueIntn(2, 3, 7, 1, 0, 2, 2, 1, 0)
	s.game.Restart()
}

// Restart / StartRound tests

func (s *GameSuite) TestRestartStartsFirstRound() {
	s.restart()

	round := s.game.Round()
	s.Require().NotNil(round)
	s.Equal("javascript", round.Word)
	s.Equal([]int{5, 8}, round.Missing)
	s.False(round.Finished)
	s.Equal(1, s.game.RoundNumber())
	s.Equal(0, s.game.Score())
	s.False(s.game.CanAdvance())
	s.False(s.game.IsOver())
}

func (s *GameSuite) TestViewMasksMissingLetters() {
	s.restart()

	view := s.game.View()

	s.Equal("javas_ri_t", view.Masked)
	s.Equal([]string{"j", "a", "v", "a", "s", "_", "r", "i", "_", "t"}, view.Characters)
	s.Empty(view.Word)
	s.Equal(1, view.RoundNumber)
	s.Equal(model.TotalRounds, view.TotalRounds)
	s.Require().Len(view.Slots, 2)
	s.Equal(model.SlotView{Number: 1, Position: 6}, view.Slots[0])
	s.Equal(model.SlotView{Number: 2, Position: 9}, view.Slots[1])
}

func (s *GameSuite) TestStartRoundOnNewGameStartsAtRoundOne() {
	s.game.StartRound()

	s.Equal(1, s.game.RoundNumber())
	s.NotNil(s.game.Round())
}

func (s *GameSuite) TestActionsBeforeFirstRoundFail() {
	_, err := s.game.CheckAnswer(model.Guess{Word: "planet"})
	s.ErrorIs(err, model.ErrNoRound)

	_, err = s.game.Reveal()
	s.ErrorIs(err, model.ErrNoRound)

	s.ErrorIs(s.game.SetSlot(0, "a"), model.ErrNoRound)

	_, err = s.game.NextRound()
	s.ErrorIs(err, model.ErrRoundNotFinished)
}

// Whole-word tests

func (s *GameSuite) TestWholeWordCorrectIgnoresCaseAndSpace() {
	s.restart()

	outcome, err := s.game.CheckAnswer(model.Guess{Word: "  JavaScript "})
	s.Require().NoError(err)

	s.Equal(model.OutcomeCorrect, outcome)
	s.Equal(1, s.game.Score())
	s.True(s.game.Round().Finished)
	s.True(s.game.CanAdvance())

	view := s.game.View()
	s.Equal("javascript", view.Masked)
	s.Equal("javascript", view.Word)
	s.Equal(model.MessageSuccess, view.Message.Kind)
	s.Equal(`Correct! The word is "javascript".`, view.Message.Text)
}

func (s *GameSuite) TestWholeWordIncorrectLeavesSlotsUnmarked() {
	s.restart()
	s.Require().NoError(s.game.SetSlot(0, "x"))

	outcome, err := s.game.CheckAnswer(model.Guess{Word: "javascripts"})
	s.Require().NoError(err)

	s.Equal(model.OutcomeIncorrectWord, outcome)
	s.Equal(0, s.game.Score())
	s.False(s.game.Round().Finished)
	for _, slot := range s.game.Round().Slots {
		s.Equal(model.MarkNone, slot.Mark)
	}
	s.Equal(model.MessageError, s.game.Message().Kind)
	s.Equal("Not quite. Check the full word and try again.", s.game.Message().Text)
}

func (s *GameSuite) TestWholeWordTakesPrecedenceOverLetters() {
	s.restart()

	outcome, err := s.game.CheckAnswer(model.Guess{Word: "javascript", Letters: []string{"x", "y"}})
	s.Require().NoError(err)

	s.Equal(model.OutcomeCorrect, outcome)
}

// Per-letter tests

func (s *GameSuite) TestLettersCorrect() {
	s.restart()

	outcome, err := s.game.CheckAnswer(model.Guess{Letters: []string{"C", "p"}})
	s.Require().NoError(err)

	s.Equal(model.OutcomeCorrect, outcome)
	s.Equal(1, s.game.Score())
	s.True(s.game.CanAdvance())
}

func (s *GameSuite) TestLettersIncompleteMarksNothing() {
	s.restart()

	outcome, err := s.game.CheckAnswer(model.Guess{Letters: []string{"c", ""}})
	s.Require().NoError(err)

	s.Equal(model.OutcomeIncompleteLetters, outcome)
	s.Equal(0, s.game.Score())
	s.False(s.game.Round().Finished)
	for _, slot := range s.game.Round().Slots {
		s.Equal(model.MarkNone, slot.Mark)
	}
	s.Equal("Fill all missing letters.", s.game.Message().Text)
}

func (s *GameSuite) TestLettersShorterThanSlotsIsIncomplete() {
	s.restart()

	outcome, err := s.game.CheckAnswer(model.Guess{Letters: []string{"c"}})
	s.Require().NoError(err)

	s.Equal(model.OutcomeIncompleteLetters, outcome)
}

func (s *GameSuite) TestEmptyGuessIsIncomplete() {
	s.restart()

	outcome, err := s.game.CheckAnswer(model.Guess{})
	s.Require().NoError(err)

	s.Equal(model.OutcomeIncompleteLetters, outcome)
}

func (s *GameSuite) TestLettersIncorrectMarksEachSlot() {
	s.restart()

	outcome, err := s.game.CheckAnswer(model.Guess{Letters: []string{"c", "x"}})
	s.Require().NoError(err)

	s.Equal(model.OutcomeIncorrectLetters, outcome)
	s.False(s.game.Round().Finished)
	s.Equal(model.MarkCorrect, s.game.Round().Slots[0].Mark)
	s.Equal(model.MarkWrong, s.game.Round().Slots[1].Mark)
	s.Equal("Some letters are wrong. Try again!", s.game.Message().Text)
}

func (s *GameSuite) TestSetSlotClearsMarkAndRetrySucceeds() {
	s.restart()
	_, _ = s.game.CheckAnswer(model.Guess{Letters: []string{"c", "x"}})

	s.Require().NoError(s.game.SetSlot(1, "P"))
	s.Equal("p", s.game.Round().Slots[1].Letter)
	s.Equal(model.MarkNone, s.game.Round().Slots[1].Mark)
	s.Equal(model.MarkCorrect, s.game.Round().Slots[0].Mark)

	outcome, err := s.game.CheckAnswer(model.Guess{})
	s.Require().NoError(err)
	s.Equal(model.OutcomeCorrect, outcome)
}

func (s *GameSuite) TestInvalidLetterChangesNothing() {
	s.restart()
	s.Require().NoError(s.game.SetSlot(0, "c"))

	_, err := s.game.CheckAnswer(model.Guess{Letters: []string{"z", "1"}})
	s.ErrorIs(err, model.ErrInvalidLetter)

	s.Equal("c", s.game.Round().Slots[0].Letter)
	s.Equal("", s.game.Round().Slots[1].Letter)
}

func (s *GameSuite) TestTooManyLetters() {
	s.restart()

	_, err := s.game.CheckAnswer(model.Guess{Letters: []string{"c", "p", "q"}})
	s.ErrorIs(err, model.ErrSlotOutOfRange)
}

func (s *GameSuite) TestSetSlotValidation() {
	s.restart()

	s.ErrorIs(s.game.SetSlot(2, "a"), model.ErrSlotOutOfRange)
	s.ErrorIs(s.game.SetSlot(-1, "a"), model.ErrSlotOutOfRange)
	s.ErrorIs(s.game.SetSlot(0, "ab"), model.ErrInvalidLetter)
	s.ErrorIs(s.game.SetSlot(0, "é"), model.ErrInvalidLetter)
	s.NoError(s.game.SetSlot(0, ""))
}

// Idempotence tests

func (s *GameSuite) TestCheckOnFinishedRoundIsNoOp() {
	s.restart()
	_, _ = s.game.CheckAnswer(model.Guess{Word: "javascript"})
	before := s.game.Snapshot()

	outcome, err := s.game.CheckAnswer(model.Guess{Word: "javascript"})
	s.Require().NoError(err)
	s.Equal(model.OutcomeAlreadyFinished, outcome)

	outcome, err = s.game.CheckAnswer(model.Guess{Letters: []string{"x", "y"}})
	s.Require().NoError(err)
	s.Equal(model.OutcomeAlreadyFinished, outcome)

	s.Equal(before, s.game.Snapshot())
	s.Equal(1, s.game.Score())
}

func (s *GameSuite) TestSetSlotAfterCorrectAnswerFails() {
	s.restart()
	_, _ = s.game.CheckAnswer(model.Guess{Word: "javascript"})

	s.ErrorIs(s.game.SetSlot(0, "a"), model.ErrRoundFinished)
}

// Reveal tests

func (s *GameSuite) TestRevealShowsAnswerWithoutScoring() {
	s.restart()

	outcome, err := s.game.Reveal()
	s.Require().NoError(err)

	s.Equal(model.OutcomeRevealed, outcome)
	s.Equal(0, s.game.Score())
	s.True(s.game.CanAdvance())

	round := s.game.Round()
	s.True(round.Finished)
	s.True(round.Revealed)
	for _, slot := range round.Slots {
		s.Equal(round.Letter(slot.Position), slot.Letter)
		s.Equal(model.MarkCorrect, slot.Mark)
		s.True(slot.Locked)
	}
	s.Equal("javascript", s.game.View().Masked)
	s.Equal(`Revealed. The word is "javascript".`, s.game.Message().Text)
}

func (s *GameSuite) TestRevealLocksSlots() {
	s.restart()
	_, _ = s.game.Reveal()

	s.ErrorIs(s.game.SetSlot(0, "a"), model.ErrSlotLocked)
}

func (s *GameSuite) TestRevealOnFinishedRoundIsNoOp() {
	s.restart()
	_, _ = s.game.CheckAnswer(model.Guess{Word: "javascript"})

	outcome, err := s.game.Reveal()
	s.Require().NoError(err)

	s.Equal(model.OutcomeAlreadyFinished, outcome)
	s.False(s.game.Round().Revealed)
	s.Equal(1, s.game.Score())
}

// Progression tests

func (s *GameSuite) TestNextRoundRequiresFinishedRound() {
	s.restart()

	_, err := s.game.NextRound()

	s.ErrorIs(err, model.ErrRoundNotFinished)
	s.Equal(1, s.game.RoundNumber())
}

func (s *GameSuite) TestNextRoundDrawsNextWord() {
	s.restart()
	_, _ = s.game.Reveal()

	outcome, err := s.game.NextRound()
	s.Require().NoError(err)

	s.Equal(model.OutcomeAdvanced, outcome)
	s.Equal(2, s.game.RoundNumber())
	s.Equal("planet", s.game.Round().Word)
	s.False(s.game.Round().Finished)
	s.False(s.game.CanAdvance())
	s.True(s.game.Message().IsEmpty())
}

func (s *GameSuite) TestGameOverAfterFinalRoundAndRestart() {
	s.restart()

	for round := 1; round <= model.TotalRounds; round++ {
		s.Equal(round, s.game.RoundNumber())
		outcome, err := s.game.CheckAnswer(model.Guess{Word: s.game.Round().Word})
		s.Require().NoError(err)
		s.Require().Equal(model.OutcomeCorrect, outcome)
		if round < model.TotalRounds {
			_, err = s.game.NextRound()
			s.Require().NoError(err)
		}
	}
	s.Equal(model.TotalRounds, s.game.Score())

	outcome, err := s.game.NextRound()
	s.Require().NoError(err)
	s.Equal(model.OutcomeGameOver, outcome)
	s.True(s.game.IsOver())
	s.False(s.game.CanAdvance())
	s.Equal("Game over! Final score: 10/10. Press Restart to play again.", s.game.Message().Text)

	_, err = s.game.NextRound()
	s.ErrorIs(err, model.ErrGameOver)

	s.game.Restart()
	s.Equal(1, s.game.RoundNumber())
	s.Equal(0, s.game.Score())
	s.False(s.game.IsOver())
	s.False(s.game.Round().Finished)
}

// Snapshot tests

func (s *GameSuite) TestSnapshotRestoreRoundTrip() {
	s.restart()
	_, _ = s.game.CheckAnswer(model.Guess{Letters: []string{"c", "x"}})

	snapshot := s.game.Snapshot()
	s.Equal([]string{"planet"}, snapshot.DrawOrder)

	restored := Restore([]string{"planet", "javascript"}, snapshot, s.random)

	s.Equal(s.game.View(), restored.View())
	s.Equal(snapshot, restored.Snapshot())

	_, _ = restored.Reveal()
	_, err := restored.NextRound()
	s.Require().NoError(err)
	s.Equal("planet", restored.Round().Word)

	// The original is unaffected by changes to the restored copy
	s.Equal(1, s.game.RoundNumber())
	s.False(s.game.Round().Finished)
}

func (s *GameSuite) TestRestoreAfterWordListChange() {
	s.random.QueueIdentityShuffle(3)
	old := New([]string{"garden", "window", "puzzle"}, s.random)
	old.Restart()
	s.Equal("puzzle", old.Round().Word)
	snapshot := old.Snapshot()
	s.Equal([]string{"garden", "window"}, snapshot.DrawOrder)

	current := []string{"planet", "bottle", "pencil"}
	restored := Restore(current, snapshot, s.random)

	// The round in progress is kept; every later draw is from the current list
	s.Equal("puzzle", restored.Round().Word)
	for i := 0; i < 4; i++ {
		_, _ = restored.Reveal()
		_, err := restored.NextRound()
		s.Require().NoError(err)
		s.Contains(current, restored.Round().Word, "draw %d", i+1)
	}
}

func TestRandomGamesKeepInvariants(t *testing.T) {
	words := []string{"planet", "computer", "javascript", "chocolate", "puzzle"}
	game := New(words, random.NewSeeded(2024))
	game.Restart()

	seen := map[string]int{}
	for round := 1; round <= model.TotalRounds; round++ {
		r := game.Round()
		seen[r.Word]++
		assert.Len(t, r.Slots, len(r.Missing))
		assert.Equal(t, r.Masked(), game.View().Masked)

		_, err := game.Reveal()
		assert.NoError(t, err)
		_, err = game.NextRound()
		assert.NoError(t, err)
	}

	// Ten rounds over five words is exactly two full cycles
	for _, word := range words {
		assert.Equal(t, 2, seen[word], word)
	}
	assert.True(t, game.IsOver())
}

func TestNormalizeLetter(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"a", "a", nil},
		{"Q", "q", nil},
		{" z ", "z", nil},
		{"", "", nil},
		{"  ", "", nil},
		{"ab", "", model.ErrInvalidLetter},
		{"1", "", model.ErrInvalidLetter},
		{"-", "", model.ErrInvalidLetter},
		{"ß", "", model.ErrInvalidLetter},
	}
	for _, tt := range tests {
		got, err := NormalizeLetter(tt.in)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
