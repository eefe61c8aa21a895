package redis

import (
	"fmt"

	"github.com/mcoot/missingletters/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "mlgame"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// wordListKey returns the Redis key for the word LIST
func wordListKey() string {
	return fmt.Sprintf("%s:words", keyPrefix)
}
