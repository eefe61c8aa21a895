package model

import "strings"

// TotalRounds is the number of rounds in one game
const TotalRounds = 10

// HiddenMarker is shown in place of a missing letter
const HiddenMarker = "_"

// Mark records whether a slot's letter was judged correct
type Mark string

const (
	MarkNone    Mark = ""
	MarkCorrect Mark = "correct"
	MarkWrong   Mark = "wrong"
)

// Slot is the input for one missing position
type Slot struct {
	Position int    // 0-indexed character position in the word
	Letter   string // Current entry, lowercase, empty if unfilled
	Mark     Mark
	Locked   bool // Set by reveal, no further edits
}

// Round is one word with a set of hidden letters
type Round struct {
	Word     string
	Missing  []int // Ascending, excludes first and last index
	Slots    []Slot
	Finished bool
	Revealed bool // Finished by reveal rather than a correct answer
}

// NewRound creates an active round with one empty slot per missing position
func NewRound(word string, missing []int) *Round {
	slots := make([]Slot, len(missing))
	for i, pos := range missing {
		slots[i] = Slot{Position: pos}
	}
	return &Round{
		Word:    word,
		Missing: missing,
		Slots:   slots,
	}
}

// Letter returns the correct letter at the given position
func (r *Round) Letter(pos int) string {
	letters := []rune(r.Word)
	if pos < 0 || pos >= len(letters) {
		return ""
	}
	return string(letters[pos])
}

// IsMissing returns true if the position is hidden
func (r *Round) IsMissing(pos int) bool {
	for _, m := range r.Missing {
		if m == pos {
			return true
		}
	}
	return false
}

// Characters returns the word one character per entry, with hidden
// positions replaced by HiddenMarker until the round is finished
func (r *Round) Characters() []string {
	letters := []rune(r.Word)
	chars := make([]string, len(letters))
	for i, ch := range letters {
		if !r.Finished && r.IsMissing(i) {
			chars[i] = HiddenMarker
		} else {
			chars[i] = string(ch)
		}
	}
	return chars
}

// Masked returns the word as displayed to the player
func (r *Round) Masked() string {
	return strings.Join(r.Characters(), "")
}

// AllFilled returns true if every slot has a letter
func (r *Round) AllFilled() bool {
	for _, s := range r.Slots {
		if s.Letter == "" {
			return false
		}
	}
	return len(r.Slots) > 0
}

// Clone returns a deep copy of the round
func (r *Round) Clone() *Round {
	if r == nil {
		return nil
	}
	c := *r
	c.Missing = append([]int(nil), r.Missing...)
	c.Slots = append([]Slot(nil), r.Slots...)
	return &c
}
