package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter writing to w, with errors to errW
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Game response type (matches API)
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

// Slot response type
type Slot struct {
	Number   int    `json:"number"`
	Position int    `json:"position"`
	Letter   string `json:"letter"`
	Mark     string `json:"mark,omitempty"`
	Locked   bool   `json:"locked"`
}

// Message response type
type Message struct {
	Kind string `json:"kind,omitempty"`
	Text string `json:"text"`
}

// HealthResult response type
type HealthResult struct {
	Status    string `json:"status"`
	WordCount int    `json:"word_count"`
}

func (o *Output) printGame(g Game) {
	if g.SessionID != "" {
		fmt.Fprintf(o.w, "Game: %s\n", g.SessionID)
	}
	fmt.Fprintf(o.w, "Round %d/%d  Score %d\n", g.RoundNumber, g.TotalRounds, g.Score)
	fmt.Fprintf(o.w, "\n    %s\n\n", strings.Join(g.Characters, " "))

	if len(g.Slots) > 0 {
		labels := make([]string, len(g.Slots))
		for i, s := range g.Slots {
			letter := s.Letter
			if letter == "" {
				letter = " "
			}
			labels[i] = fmt.Sprintf("#%d @ %d [%s]%s", s.Number, s.Position, letter, markSuffix(s.Mark))
		}
		fmt.Fprintf(o.w, "Slots: %s\n", strings.Join(labels, "  "))
	}

	if g.Message != nil && g.Message.Text != "" {
		fmt.Fprintf(o.w, "%s\n", g.Message.Text)
	}

	switch {
	case g.Over:
		fmt.Fprintln(o.w, "(restart to play again)")
	case g.CanAdvance:
		fmt.Fprintln(o.w, "(next for the next round)")
	}
}

func markSuffix(mark string) string {
	switch mark {
	case "correct":
		return " ok"
	case "wrong":
		return " x"
	default:
		return ""
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	fmt.Fprintf(o.w, "Words: %d\n", h.WordCount)
}
