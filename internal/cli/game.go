package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// requireSession returns the current session ID or ErrNoSession
func requireSession() (string, error) {
	if cfg.Session == "" {
		return "", ErrNoSession
	}
	return cfg.Session, nil
}

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Post("/api/v1/games", nil, &result); err != nil {
				return err
			}

			// Save session for future commands
			if err := cfg.SaveSession(result.SessionID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireSession()
			if err != nil {
				return err
			}

			var result Game
			if err := client.Get(gamePath(session), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <slot> <letter>",
		Short: "Enter one missing letter (slots are numbered from 1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireSession()
			if err != nil {
				return err
			}

			slot, err := strconv.Atoi(args[0])
			if err != nil || slot < 1 {
				return fmt.Errorf("slot must be a positive number")
			}

			body := map[string]string{"letter": args[1]}

			var result Game
			if err := client.Put(gamePath(session, "slots", strconv.Itoa(slot)), body, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	var word string

	cmd := &cobra.Command{
		Use:   "check [letters...]",
		Short: "Check an answer",
		Long: `Check an answer for the current round.

Pass --word to guess the whole word, or the missing letters in order as
arguments. With neither, the letters already entered with 'set' are checked.`,
		Example: `  mlgame check --word planet
  mlgame check c p`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireSession()
			if err != nil {
				return err
			}

			body := map[string]any{}
			if word != "" {
				body["word"] = word
			} else if len(args) > 0 {
				body["letters"] = args
			}

			var result Game
			if err := client.Post(gamePath(session, "check"), body, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&word, "word", "w", "", "Guess the whole word")

	return cmd
}

// newActionCmd builds a command that posts to a session action endpoint
func newActionCmd(use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireSession()
			if err != nil {
				return err
			}

			var result Game
			if err := client.Post(gamePath(session, action), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRevealCmd() *cobra.Command {
	return newActionCmd("reveal", "Give up on the round and show the word", "reveal")
}

func newNextCmd() *cobra.Command {
	return newActionCmd("next", "Move to the next round", "next")
}

func newRestartCmd() *cobra.Command {
	return newActionCmd("restart", "Start the game over from round 1", "restart")
}

func newEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the current game and forget it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := requireSession()
			if err != nil {
				return err
			}

			if err := client.Delete(gamePath(session)); err != nil {
				return err
			}

			if err := cfg.ClearSession(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}

			output(cmd).PrintMessage("Game ended")
			return nil
		},
	}
}
