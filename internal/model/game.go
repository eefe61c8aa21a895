package model

import "time"

// GameState is the serializable state of one game
type GameState struct {
	DrawOrder   []string // Words not yet served this cycle, drawn from the end
	Round       *Round
	RoundNumber int // 1-indexed
	Score       int
	Over        bool
	Message     Message
}

// Clone returns a deep copy of the state
func (s GameState) Clone() GameState {
	c := s
	c.DrawOrder = append([]string(nil), s.DrawOrder...)
	c.Round = s.Round.Clone()
	return c
}

// Guess is a submitted answer. A non-blank Word selects whole-word mode;
// otherwise Letters are matched against the slots in order.
type Guess struct {
	Word    string
	Letters []string
}

// SlotView describes one input slot for rendering
type SlotView struct {
	Number   int // 1-indexed sequence number
	Position int // 1-indexed character position
	Letter   string
	Mark     Mark
	Locked   bool
}

// GameView is a read-only snapshot for the presentation layer
type GameView struct {
	RoundNumber int
	TotalRounds int
	Score       int
	Characters  []string // One entry per letter, HiddenMarker for hidden ones
	Masked      string
	Slots       []SlotView
	Word        string // Only set once the round is finished
	Finished    bool
	Revealed    bool
	CanAdvance  bool
	Over        bool
	Message     Message
}

// SessionID identifies a hosted game
type SessionID string

// Session is a game hosted on behalf of one player
type Session struct {
	ID        SessionID
	State     GameState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	c := *s
	c.State = s.State.Clone()
	return &c
}
