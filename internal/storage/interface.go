package storage

import (
	"context"

	"github.com/mcoot/missingletters/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	SessionExists(ctx context.Context, id model.SessionID) (bool, error)

	// Word list operations
	GetWordList(ctx context.Context) ([]string, error)
	SaveWordList(ctx context.Context, words []string) error
}
