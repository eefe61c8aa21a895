package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/missingletters/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newSession(id model.SessionID) *model.Session {
	return &model.Session{
		ID: id,
		State: model.GameState{
			DrawOrder:   []string{"garden", "window"},
			Round:       model.NewRound("planet", []int{3}),
			RoundNumber: 1,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := newSession("SESSION00001")

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "SESSION00001")
	s.Require().NoError(err)
	s.Equal(session, retrieved)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSavedSessionIsIsolatedFromCaller() {
	session := newSession("SESSION00001")
	_ = s.storage.SaveSession(s.ctx, session)

	// Mutating the caller's copy must not leak into storage
	session.State.Score = 5
	session.State.DrawOrder[0] = "mutated"
	session.State.Round.Slots[0].Letter = "n"

	retrieved, err := s.storage.GetSession(s.ctx, "SESSION00001")
	s.Require().NoError(err)
	s.Equal(0, retrieved.State.Score)
	s.Equal("garden", retrieved.State.DrawOrder[0])
	s.Equal("", retrieved.State.Round.Slots[0].Letter)

	// Nor must mutating a retrieved copy
	retrieved.State.Round.Finished = true
	again, _ := s.storage.GetSession(s.ctx, "SESSION00001")
	s.False(again.State.Round.Finished)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, newSession("SESSION00001"))

	err := s.storage.DeleteSession(s.ctx, "SESSION00001")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "SESSION00001")
	s.ErrorIs(err, model.ErrSessionNotFound)
	s.Equal(0, s.storage.SessionCount())
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "SESSION00001")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveSession(s.ctx, newSession("SESSION00001"))

	exists, err = s.storage.SessionExists(s.ctx, "SESSION00001")
	s.Require().NoError(err)
	s.True(exists)
}

// Word list tests

func (s *StorageSuite) TestSaveAndGetWordList() {
	words := []string{"planet", "computer", "puzzle"}

	err := s.storage.SaveWordList(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetWordList(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetWordListNotLoaded() {
	_, err := s.storage.GetWordList(s.ctx)
	s.ErrorIs(err, model.ErrWordListNotLoaded)
}

func (s *StorageSuite) TestWordListIsCopied() {
	words := []string{"planet", "puzzle"}
	_ = s.storage.SaveWordList(s.ctx, words)
	words[0] = "mutated"

	retrieved, _ := s.storage.GetWordList(s.ctx)
	s.Equal([]string{"planet", "puzzle"}, retrieved)
}
