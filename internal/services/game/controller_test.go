package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/missingletters/internal/dependencies/mocks"
	"github.com/mcoot/missingletters/internal/model"
	"github.com/mcoot/missingletters/internal/services/wordlist"
	"github.com/mcoot/missingletters/internal/storage/memory"
	"github.com/mcoot/missingletters/internal/testutil"
)

var startTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	wordList   *wordlist.Service
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.wordList = wordlist.New(s.storage, logger)
	s.clock = mocks.NewMockClock(startTime)
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.wordList, s.clock, s.random, logger)
	s.ctx = context.Background()

	s.Require().NoError(s.wordList.LoadWords([]string{"planet", "javascript"}))
}

// newSession starts a session whose first word is "javascript" with
// "c" and "p" hidden
func (s *ControllerSuite) newSession() model.SessionID {
	s.random.QueueString("SESSION00001")
	s.random.QueueIdentityShuffle(2)
	s.random.QueueIntn(2, 3, 7, 1, 0, 2, 2, 1, 0)

	result, err := s.controller.NewSession(s.ctx)
	s.Require().NoError(err)
	return result.SessionID
}

func (s *ControllerSuite) currentWord(id model.SessionID) string {
	session, err := s.storage.GetSession(s.ctx, id)
	s.Require().NoError(err)
	return session.State.Round.Word
}

// NewSession tests

func (s *ControllerSuite) TestNewSessionStartsFirstRound() {
	s.random.QueueString("SESSION00001")
	s.random.QueueIdentityShuffle(2)
	s.random.QueueIntn(2, 3, 7, 1, 0, 2, 2, 1, 0)

	result, err := s.controller.NewSession(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.SessionID("SESSION00001"), result.SessionID)
	s.Equal(model.OutcomeNone, result.Outcome)
	s.Equal(1, result.View.RoundNumber)
	s.Equal(model.TotalRounds, result.View.TotalRounds)
	s.Equal(0, result.View.Score)
	s.Equal("javas_ri_t", result.View.Masked)
	s.Require().Len(result.View.Slots, 2)
	s.Equal(6, result.View.Slots[0].Position)
	s.Equal(9, result.View.Slots[1].Position)
	s.Empty(result.View.Word)
	s.False(result.View.CanAdvance)
}

func (s *ControllerSuite) TestNewSessionIsPersisted() {
	id := s.newSession()

	session, err := s.controller.GetSession(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(id, session.ID)
	s.Equal(startTime, session.CreatedAt)
	s.Equal(startTime, session.UpdatedAt)
	s.Equal("javascript", session.State.Round.Word)
	s.Equal([]string{"planet"}, session.State.DrawOrder)
}

func (s *ControllerSuite) TestSessionsAreIndependent() {
	first := s.newSession()
	s.random.QueueString("SESSION00002")
	second, err := s.controller.NewSession(s.ctx)
	s.Require().NoError(err)

	_, err = s.controller.Check(s.ctx, first, model.Guess{Word: "javascript"})
	s.Require().NoError(err)

	view, err := s.controller.View(s.ctx, second.SessionID)
	s.Require().NoError(err)
	s.Equal(0, view.View.Score)
	s.False(view.View.Finished)
}

// Check tests

func (s *ControllerSuite) TestCheckWholeWordCorrect() {
	id := s.newSession()

	result, err := s.controller.Check(s.ctx, id, model.Guess{Word: " JavaScript "})
	s.Require().NoError(err)

	s.Equal(model.OutcomeCorrect, result.Outcome)
	s.Equal(1, result.View.Score)
	s.True(result.View.Finished)
	s.True(result.View.CanAdvance)
	s.Equal("javascript", result.View.Word)
	s.Equal(`Correct! The word is "javascript".`, result.View.Message.Text)

	session, _ := s.storage.GetSession(s.ctx, id)
	s.Equal(1, session.State.Score)
}

func (s *ControllerSuite) TestCheckLettersIncorrect() {
	id := s.newSession()

	result, err := s.controller.Check(s.ctx, id, model.Guess{Letters: []string{"c", "x"}})
	s.Require().NoError(err)

	s.Equal(model.OutcomeIncorrectLetters, result.Outcome)
	s.Equal(model.MarkCorrect, result.View.Slots[0].Mark)
	s.Equal(model.MarkWrong, result.View.Slots[1].Mark)
	s.Equal("Some letters are wrong. Try again!", result.View.Message.Text)
	s.Equal(model.MessageError, result.View.Message.Kind)
	s.Equal(0, result.View.Score)
}

func (s *ControllerSuite) TestSetSlotThenCheck() {
	id := s.newSession()

	_, err := s.controller.SetSlot(s.ctx, id, 0, "C")
	s.Require().NoError(err)
	result, err := s.controller.SetSlot(s.ctx, id, 1, "p")
	s.Require().NoError(err)
	s.Equal("c", result.View.Slots[0].Letter)
	s.Equal("p", result.View.Slots[1].Letter)

	result, err = s.controller.Check(s.ctx, id, model.Guess{})
	s.Require().NoError(err)
	s.Equal(model.OutcomeCorrect, result.Outcome)
	s.Equal(1, result.View.Score)
}

func (s *ControllerSuite) TestRejectedActionIsNotSaved() {
	id := s.newSession()
	s.clock.Advance(time.Minute)

	_, err := s.controller.SetSlot(s.ctx, id, 0, "7")
	s.ErrorIs(err, model.ErrInvalidLetter)

	session, _ := s.storage.GetSession(s.ctx, id)
	s.Equal("", session.State.Round.Slots[0].Letter)
	s.Equal(startTime, session.UpdatedAt)
}

func (s *ControllerSuite) TestActionUpdatesTimestamp() {
	id := s.newSession()
	s.clock.Advance(time.Minute)

	_, err := s.controller.Reveal(s.ctx, id)
	s.Require().NoError(err)

	session, _ := s.storage.GetSession(s.ctx, id)
	s.Equal(startTime, session.CreatedAt)
	s.Equal(startTime.Add(time.Minute), session.UpdatedAt)
}

// Round flow tests

func (s *ControllerSuite) TestNextBeforeFinished() {
	id := s.newSession()

	_, err := s.controller.Next(s.ctx, id)
	s.ErrorIs(err, model.ErrRoundNotFinished)
}

func (s *ControllerSuite) TestRevealThenNext() {
	id := s.newSession()

	result, err := s.controller.Reveal(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.OutcomeRevealed, result.Outcome)
	s.Equal(0, result.View.Score)
	s.True(result.View.Revealed)
	s.Equal("javascript", result.View.Masked)

	result, err = s.controller.Next(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.OutcomeAdvanced, result.Outcome)
	s.Equal(2, result.View.RoundNumber)
	s.Equal("p_anet", result.View.Masked)
	s.True(result.View.Message.IsEmpty())
}

func (s *ControllerSuite) TestRestartResetsGame() {
	id := s.newSession()
	_, err := s.controller.Check(s.ctx, id, model.Guess{Word: "javascript"})
	s.Require().NoError(err)
	_, err = s.controller.Next(s.ctx, id)
	s.Require().NoError(err)

	result, err := s.controller.Restart(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(1, result.View.RoundNumber)
	s.Equal(0, result.View.Score)
	s.False(result.View.Finished)
	s.False(result.View.Over)
}

func (s *ControllerSuite) TestPlayFullGame() {
	id := s.newSession()

	var result *Result
	var err error
	for round := 1; round <= model.TotalRounds; round++ {
		result, err = s.controller.Check(s.ctx, id, model.Guess{Word: s.currentWord(id)})
		s.Require().NoError(err)
		s.Equal(model.OutcomeCorrect, result.Outcome)
		s.Equal(round, result.View.Score)

		result, err = s.controller.Next(s.ctx, id)
		s.Require().NoError(err)
	}

	s.Equal(model.OutcomeGameOver, result.Outcome)
	s.True(result.View.Over)
	s.False(result.View.CanAdvance)
	s.Equal(model.TotalRounds, result.View.RoundNumber)
	s.Equal("Game over! Final score: 10/10. Press Restart to play again.", result.View.Message.Text)

	_, err = s.controller.Next(s.ctx, id)
	s.ErrorIs(err, model.ErrGameOver)
}

// Session lifecycle tests

func (s *ControllerSuite) TestUnknownSession() {
	_, err := s.controller.View(s.ctx, "MISSING")
	s.ErrorIs(err, model.ErrSessionNotFound)

	_, err = s.controller.Check(s.ctx, "MISSING", model.Guess{Word: "planet"})
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestSessionExists() {
	exists, err := s.controller.SessionExists(s.ctx, "MISSING")
	s.Require().NoError(err)
	s.False(exists)

	id := s.newSession()
	exists, err = s.controller.SessionExists(s.ctx, id)
	s.Require().NoError(err)
	s.True(exists)

	s.Require().NoError(s.controller.EndSession(s.ctx, id))
	exists, err = s.controller.SessionExists(s.ctx, id)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *ControllerSuite) TestEndSession() {
	id := s.newSession()

	err := s.controller.EndSession(s.ctx, id)
	s.Require().NoError(err)

	_, err = s.controller.View(s.ctx, id)
	s.ErrorIs(err, model.ErrSessionNotFound)

	// Ending twice is fine
	s.NoError(s.controller.EndSession(s.ctx, id))
}
