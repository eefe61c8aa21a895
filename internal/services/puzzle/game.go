package puzzle

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mcoot/missingletters/internal/dependencies/random"
	"github.com/mcoot/missingletters/internal/model"
)

// Game is one player's run of TotalRounds rounds. It is not safe for
// concurrent use; callers serialize actions.
type Game struct {
	pool   *Pool
	random random.Random
	state  model.GameState
}

// New creates a game over the given words. No round is in progress until
// Restart or StartRound is called.
func New(words []string, rnd random.Random) *Game {
	return &Game{
		pool:   NewPool(words, rnd),
		random: rnd,
	}
}

// Restore resumes a game from a snapshot taken with Snapshot
func Restore(words []string, state model.GameState, rnd random.Random) *Game {
	state = state.Clone()
	pool := RestorePool(words, state.DrawOrder, rnd)
	state.DrawOrder = nil
	return &Game{
		pool:   pool,
		random: rnd,
		state:  state,
	}
}

// Snapshot returns a copy of the full game state, including the draw order
func (g *Game) Snapshot() model.GameState {
	s := g.state.Clone()
	s.DrawOrder = g.pool.Order()
	return s
}

// Round returns the current round, or nil before the first round
func (g *Game) Round() *model.Round {
	return g.state.Round
}

// Score returns the number of rounds answered correctly
func (g *Game) Score() int {
	return g.state.Score
}

// RoundNumber returns the 1-indexed current round
func (g *Game) RoundNumber() int {
	return g.state.RoundNumber
}

// IsOver returns true once NextRound has been called on the final round
func (g *Game) IsOver() bool {
	return g.state.Over
}

// Message returns the latest feedback line
func (g *Game) Message() model.Message {
	return g.state.Message
}

// CanAdvance returns true if NextRound is currently permitted
func (g *Game) CanAdvance() bool {
	return g.state.Round != nil && g.state.Round.Finished && !g.state.Over
}

// StartRound draws the next word and hides some of its letters. The round
// number is left unchanged, except that a game with no rounds yet starts at 1.
func (g *Game) StartRound() {
	if g.state.RoundNumber == 0 {
		g.state.RoundNumber = 1
	}
	word := g.pool.Draw()
	g.state.Round = model.NewRound(word, ChooseMissingPositions(word, g.random))
	g.state.Message = model.Message{}
}

// Restart resets score and round count and begins a new game with a
// freshly shuffled draw order
func (g *Game) Restart() {
	g.state.Score = 0
	g.state.RoundNumber = 1
	g.state.Over = false
	g.pool.Refill()
	g.StartRound()
}

// NextRound moves to the next round, or ends the game after the final round
func (g *Game) NextRound() (model.Outcome, error) {
	if g.state.Over {
		return model.OutcomeNone, model.ErrGameOver
	}
	if g.state.Round == nil || !g.state.Round.Finished {
		return model.OutcomeNone, model.ErrRoundNotFinished
	}

	if g.state.RoundNumber >= model.TotalRounds {
		g.state.Over = true
		return g.record(model.OutcomeGameOver), nil
	}

	g.state.RoundNumber++
	g.StartRound()
	return model.OutcomeAdvanced, nil
}

// SetSlot enters a letter into the slot at index (0-indexed, in slot order).
// An empty letter clears the slot. Editing a slot clears its mark.
func (g *Game) SetSlot(index int, letter string) error {
	r := g.state.Round
	if r == nil {
		return model.ErrNoRound
	}
	if index < 0 || index >= len(r.Slots) {
		return model.ErrSlotOutOfRange
	}
	if r.Slots[index].Locked {
		return model.ErrSlotLocked
	}
	if r.Finished {
		return model.ErrRoundFinished
	}

	normalized, err := NormalizeLetter(letter)
	if err != nil {
		return err
	}
	setSlotLetter(&r.Slots[index], normalized)
	return nil
}

// CheckAnswer judges a guess. A non-blank guess.Word is compared to the
// whole word; otherwise guess.Letters (if given) replace the slot entries and
// the slots are judged individually. Checking a finished round does nothing.
func (g *Game) CheckAnswer(guess model.Guess) (model.Outcome, error) {
	r := g.state.Round
	if r == nil {
		return model.OutcomeNone, model.ErrNoRound
	}
	if r.Finished {
		return model.OutcomeAlreadyFinished, nil
	}

	if word := strings.ToLower(strings.TrimSpace(guess.Word)); word != "" {
		if word == r.Word {
			return g.finish(model.OutcomeCorrect), nil
		}
		return g.record(model.OutcomeIncorrectWord), nil
	}

	if guess.Letters != nil {
		if err := g.fillSlots(guess.Letters); err != nil {
			return model.OutcomeNone, err
		}
	}

	if !r.AllFilled() {
		return g.record(model.OutcomeIncompleteLetters), nil
	}

	allCorrect := true
	for i := range r.Slots {
		slot := &r.Slots[i]
		if slot.Letter == r.Letter(slot.Position) {
			slot.Mark = model.MarkCorrect
		} else {
			slot.Mark = model.MarkWrong
			allCorrect = false
		}
	}

	if allCorrect {
		return g.finish(model.OutcomeCorrect), nil
	}
	return g.record(model.OutcomeIncorrectLetters), nil
}

// Reveal gives up on the round and shows the answer. Score is unchanged.
func (g *Game) Reveal() (model.Outcome, error) {
	r := g.state.Round
	if r == nil {
		return model.OutcomeNone, model.ErrNoRound
	}
	if r.Finished {
		return model.OutcomeAlreadyFinished, nil
	}
	for i := range r.Slots {
		r.Slots[i].Locked = true
	}
	r.Revealed = true
	return g.finish(model.OutcomeRevealed), nil
}

// View returns a snapshot of what the player should see
func (g *Game) View() model.GameView {
	view := model.GameView{
		RoundNumber: g.state.RoundNumber,
		TotalRounds: model.TotalRounds,
		Score:       g.state.Score,
		CanAdvance:  g.CanAdvance(),
		Over:        g.state.Over,
		Message:     g.state.Message,
	}

	r := g.state.Round
	if r == nil {
		return view
	}

	view.Characters = r.Characters()
	view.Masked = r.Masked()
	view.Finished = r.Finished
	view.Revealed = r.Revealed
	if r.Finished {
		view.Word = r.Word
	}

	view.Slots = make([]model.SlotView, len(r.Slots))
	for i, s := range r.Slots {
		view.Slots[i] = model.SlotView{
			Number:   i + 1,
			Position: s.Position + 1,
			Letter:   s.Letter,
			Mark:     s.Mark,
			Locked:   s.Locked,
		}
	}
	return view
}

// finish completes the round, filling every slot with its answer
func (g *Game) finish(outcome model.Outcome) model.Outcome {
	r := g.state.Round
	for i := range r.Slots {
		r.Slots[i].Letter = r.Letter(r.Slots[i].Position)
		r.Slots[i].Mark = model.MarkCorrect
	}
	r.Finished = true
	if outcome == model.OutcomeCorrect {
		g.state.Score++
	}
	return g.record(outcome)
}

// record stores the message for an outcome and returns the outcome
func (g *Game) record(outcome model.Outcome) model.Outcome {
	word := ""
	if g.state.Round != nil {
		word = g.state.Round.Word
	}
	if msg, ok := model.MessageFor(outcome, word, g.state.Score); ok {
		g.state.Message = msg
	}
	return outcome
}

// fillSlots replaces all slot entries; entries past the end of letters are
// treated as empty. Nothing is changed if any letter is invalid.
func (g *Game) fillSlots(letters []string) error {
	r := g.state.Round
	if len(letters) > len(r.Slots) {
		return model.ErrSlotOutOfRange
	}

	normalized := make([]string, len(r.Slots))
	for i, letter := range letters {
		n, err := NormalizeLetter(letter)
		if err != nil {
			return err
		}
		normalized[i] = n
	}

	for i := range r.Slots {
		setSlotLetter(&r.Slots[i], normalized[i])
	}
	return nil
}

func setSlotLetter(slot *model.Slot, letter string) {
	if slot.Letter != letter {
		slot.Letter = letter
		slot.Mark = model.MarkNone
	}
}

// NormalizeLetter validates a single-letter entry and lowercases it.
// Surrounding whitespace is ignored and an empty entry is allowed.
func NormalizeLetter(letter string) (string, error) {
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return "", nil
	}
	if utf8.RuneCountInString(letter) != 1 {
		return "", model.ErrInvalidLetter
	}
	r, _ := utf8.DecodeRuneInString(letter)
	lower := unicode.ToLower(r)
	if lower < 'a' || lower > 'z' {
		return "", model.ErrInvalidLetter
	}
	return string(lower), nil
}
