package response

import (
	"github.com/mcoot/missingletters/internal/model"
	"github.com/mcoot/missingletters/internal/services/game"
)

// Slot represents one missing letter input
type Slot struct {
	Number   int    `json:"number"`
	Position int    `json:"position"`
	Letter   string `json:"letter"`
	Mark     string `json:"mark,omitempty"`
	Locked   bool   `json:"locked"`
}

// Message is the feedback line
type Message struct {
	Kind string `json:"kind,omitempty"`
	Text string `json:"text"`
}

// Game represents a game session in API responses
type Game struct {
	SessionID   string   `json:"session_id"`
	Outcome     string   `json:"outcome,omitempty"`
	RoundNumber int      `json:"round_number"`
	TotalRounds int      `json:"total_rounds"`
	Score       int      `json:"score"`
	Masked      string   `json:"masked"`
	Characters  []string `json:"characters"`
	Slots       []Slot   `json:"slots"`
	Word        string   `json:"word,omitempty"`
	Finished    bool     `json:"finished"`
	Revealed    bool     `json:"revealed"`
	CanAdvance  bool     `json:"can_advance"`
	Over        bool     `json:"over"`
	Message     *Message `json:"message,omitempty"`
}

// GameFromResult converts a controller result
func GameFromResult(r *game.Result) Game {
	v := r.View

	slots := make([]Slot, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = Slot{
			Number:   s.Number,
			Position: s.Position,
			Letter:   s.Letter,
			Mark:     string(s.Mark),
			Locked:   s.Locked,
		}
	}

	return Game{
		SessionID:   string(r.SessionID),
		Outcome:     string(r.Outcome),
		RoundNumber: v.RoundNumber,
		TotalRounds: v.TotalRounds,
		Score:       v.Score,
		Masked:      v.Masked,
		Characters:  v.Characters,
		Slots:       slots,
		Word:        v.Word,
		Finished:    v.Finished,
		Revealed:    v.Revealed,
		CanAdvance:  v.CanAdvance,
		Over:        v.Over,
		Message:     messageFromModel(v.Message),
	}
}

func messageFromModel(m model.Message) *Message {
	if m.IsEmpty() {
		return nil
	}
	return &Message{Kind: string(m.Kind), Text: m.Text}
}

// Health is the health check response
type Health struct {
	Status    string `json:"status"`
	WordCount int    `json:"word_count"`
}
