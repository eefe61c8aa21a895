package model

import "fmt"

// Outcome is the result of a player action. Outcomes are signals for the
// presentation layer, not errors: every one of them leaves the game in a
// valid state the player can continue from.
type Outcome string

const (
	OutcomeNone              Outcome = ""
	OutcomeCorrect           Outcome = "correct"
	OutcomeIncorrectWord     Outcome = "incorrect_word"
	OutcomeIncorrectLetters  Outcome = "incorrect_letters"
	OutcomeIncompleteLetters Outcome = "incomplete_letters"
	OutcomeAlreadyFinished   Outcome = "already_finished"
	OutcomeRevealed          Outcome = "revealed"
	OutcomeAdvanced          Outcome = "advanced"
	OutcomeGameOver          Outcome = "game_over"
)

// MessageKind selects how a message is styled
type MessageKind string

const (
	MessageInfo    MessageKind = ""
	MessageError   MessageKind = "error"
	MessageSuccess MessageKind = "success"
)

// Message is the line of feedback shown under the puzzle
type Message struct {
	Kind MessageKind
	Text string
}

// IsEmpty returns true if there is nothing to show
func (m Message) IsEmpty() bool {
	return m.Text == ""
}

// Messages shown for each outcome
func incorrectWordMessage() Message {
	return Message{Kind: MessageError, Text: "Not quite. Check the full word and try again."}
}

func incorrectLettersMessage() Message {
	return Message{Kind: MessageError, Text: "Some letters are wrong. Try again!"}
}

func incompleteLettersMessage() Message {
	return Message{Kind: MessageInfo, Text: "Fill all missing letters."}
}

func correctMessage(word string) Message {
	return Message{Kind: MessageSuccess, Text: fmt.Sprintf("Correct! The word is %q.", word)}
}

func revealedMessage(word string) Message {
	return Message{Kind: MessageInfo, Text: fmt.Sprintf("Revealed. The word is %q.", word)}
}

func gameOverMessage(score int) Message {
	return Message{
		Kind: MessageInfo,
		Text: fmt.Sprintf("Game over! Final score: %d/%d. Press Restart to play again.", score, TotalRounds),
	}
}

// MessageFor returns the message for an outcome, given the current word and
// score. Outcomes that leave the message unchanged return ok=false.
func MessageFor(outcome Outcome, word string, score int) (Message, bool) {
	switch outcome {
	case OutcomeCorrect:
		return correctMessage(word), true
	case OutcomeIncorrectWord:
		return incorrectWordMessage(), true
	case OutcomeIncorrectLetters:
		return incorrectLettersMessage(), true
	case OutcomeIncompleteLetters:
		return incompleteLettersMessage(), true
	case OutcomeRevealed:
		return revealedMessage(word), true
	case OutcomeGameOver:
		return gameOverMessage(score), true
	case OutcomeAdvanced:
		return Message{}, true
	default:
		return Message{}, false
	}
}
