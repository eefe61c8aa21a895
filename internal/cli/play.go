package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/missingletters/internal/dependencies/random"
	"github.com/mcoot/missingletters/internal/model"
	"github.com/mcoot/missingletters/internal/services/puzzle"
	"github.com/mcoot/missingletters/internal/services/wordlist"
	"github.com/mcoot/missingletters/internal/storage/memory"
)

const playHelp = `Type the whole word, or the missing letters separated by spaces.
Commands: :reveal (:r)  :next (:n)  :restart  :quit (:q)`

func newPlayCmd() *cobra.Command {
	var (
		seed      uint64
		wordsPath string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game locally in the terminal",
		Long: `Play a game locally without a server.

` + playHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := playWords(cmd.Context(), wordsPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			var rnd random.Random = random.New()
			if cmd.Flags().Changed("seed") {
				rnd = random.NewSeeded(seed)
			}

			game := puzzle.New(words, rnd)
			game.Restart()

			return runPlay(cmd.InOrStdin(), output(cmd), game)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a repeatable game")
	cmd.Flags().StringVar(&wordsPath, "words", "", "Word list file, one word per line")

	return cmd
}

// playWords returns the words for a local game
func playWords(ctx context.Context, path string, logW io.Writer) ([]string, error) {
	if path == "" {
		return wordlist.Default(), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	svc := wordlist.New(memory.New(), playLogger(logW))
	if err := svc.LoadFromFile(ctx, path); err != nil {
		return nil, fmt.Errorf("failed to load words: %w", err)
	}
	return svc.Words(), nil
}

func playLogger(w io.Writer) *slog.Logger {
	if cfg != nil && cfg.Verbose {
		return slog.New(slog.NewTextHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runPlay reads commands until :quit or end of input
func runPlay(in io.Reader, out *Output, game *puzzle.Game) error {
	out.PrintMessage(playHelp)
	out.Print(gameFromView(game.View(), model.OutcomeNone))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		outcome, quit, err := playLine(game, line)
		if quit {
			return nil
		}
		if err != nil {
			out.PrintError(errors.New(playErrorMessage(err)))
			continue
		}
		out.Print(gameFromView(game.View(), outcome))
	}
	return scanner.Err()
}

// playLine applies one line of input to the game
func playLine(game *puzzle.Game, line string) (model.Outcome, bool, error) {
	switch strings.ToLower(line) {
	case ":quit", ":q":
		return model.OutcomeNone, true, nil
	case ":reveal", ":r":
		outcome, err := game.Reveal()
		return outcome, false, err
	case ":next", ":n":
		outcome, err := game.NextRound()
		return outcome, false, err
	case ":restart":
		game.Restart()
		return model.OutcomeNone, false, nil
	}

	if strings.HasPrefix(line, ":") {
		return model.OutcomeNone, false, fmt.Errorf("unknown command %q", line)
	}

	fields := strings.Fields(line)
	guess := model.Guess{Letters: fields}
	if len(fields) == 1 && len([]rune(fields[0])) > 1 {
		guess = model.Guess{Word: fields[0]}
	}

	outcome, err := game.CheckAnswer(guess)
	return outcome, false, err
}

func playErrorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidLetter):
		return "each missing letter must be a single letter a-z"
	case errors.Is(err, model.ErrSlotOutOfRange):
		return "too many letters for this word"
	case errors.Is(err, model.ErrRoundNotFinished):
		return "solve or reveal the word first"
	case errors.Is(err, model.ErrGameOver):
		return "the game is over, type :restart to play again"
	default:
		return err.Error()
	}
}

// gameFromView converts a local game view to the API's shape
func gameFromView(v model.GameView, outcome model.Outcome) Game {
	g := Game{
		Outcome:     string(outcome),
		RoundNumber: v.RoundNumber,
		TotalRounds: v.TotalRounds,
		Score:       v.Score,
		Masked:      v.Masked,
		Characters:  v.Characters,
		Word:        v.Word,
		Finished:    v.Finished,
		Revealed:    v.Revealed,
		CanAdvance:  v.CanAdvance,
		Over:        v.Over,
	}
	g.Slots = make([]Slot, len(v.Slots))
	for i, s := range v.Slots {
		g.Slots[i] = Slot{
			Number:   s.Number,
			Position: s.Position,
			Letter:   s.Letter,
			Mark:     string(s.Mark),
			Locked:   s.Locked,
		}
	}
	if !v.Message.IsEmpty() {
		g.Message = &Message{Kind: string(v.Message.Kind), Text: v.Message.Text}
	}
	return g
}
