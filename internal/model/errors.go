package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Input errors
	ErrInvalidLetter  = errors.New("invalid letter")
	ErrSlotOutOfRange = errors.New("slot out of range")
	ErrSlotLocked     = errors.New("slot is locked")

	// Progression errors
	ErrRoundFinished    = errors.New("round is already finished")
	ErrRoundNotFinished = errors.New("round is not finished")
	ErrGameOver         = errors.New("game is over")
	ErrNoRound          = errors.New("no round in progress")

	// Word list errors
	ErrEmptyWordList     = errors.New("word list is empty")
	ErrInvalidWord       = errors.New("invalid word")
	ErrWordListNotLoaded = errors.New("word list not loaded")
)
