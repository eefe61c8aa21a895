package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/missingletters/internal/dependencies/clock"
	"github.com/mcoot/missingletters/internal/dependencies/random"
	"github.com/mcoot/missingletters/internal/model"
	"github.com/mcoot/missingletters/internal/services/puzzle"
	"github.com/mcoot/missingletters/internal/services/wordlist"
	"github.com/mcoot/missingletters/internal/storage"
)

const sessionIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Result is what a player action produced
type Result struct {
	SessionID model.SessionID
	Outcome   model.Outcome
	View      model.GameView
}

// Controller hosts games on behalf of players, one game per session
type Controller struct {
	storage  storage.Storage
	wordList *wordlist.Service
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger

	// Serializes load-modify-save of sessions
	mu sync.Mutex
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	wordList *wordlist.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		wordList: wordList,
		clock:    clock,
		random:   random,
		logger:   logger,
	}
}

// NewSession starts a fresh game at round 1 with a score of zero
func (c *Controller) NewSession(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	id := model.SessionID(c.random.String(12, sessionIDAlphabet))

	game := puzzle.New(c.wordList.Words(), c.random)
	game.Restart()

	session := &model.Session{
		ID:        id,
		State:     game.Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(id)),
		slog.Int("word_count", c.wordList.WordCount()),
	)

	return &Result{SessionID: id, View: game.View()}, nil
}

// GetSession returns the stored session
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// SessionExists reports whether a session is stored, without loading it
func (c *Controller) SessionExists(ctx context.Context, id model.SessionID) (bool, error) {
	return c.storage.SessionExists(ctx, id)
}

// View returns what the player of a session currently sees
func (c *Controller) View(ctx context.Context, id model.SessionID) (*Result, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	game := puzzle.Restore(c.wordList.Words(), session.State, c.random)
	return &Result{SessionID: id, View: game.View()}, nil
}

// SetSlot enters a letter into one slot (0-indexed)
func (c *Controller) SetSlot(ctx context.Context, id model.SessionID, index int, letter string) (*Result, error) {
	return c.apply(ctx, id, "set_slot", func(g *puzzle.Game) (model.Outcome, error) {
		return model.OutcomeNone, g.SetSlot(index, letter)
	})
}

// Check judges a guess against the current round
func (c *Controller) Check(ctx context.Context, id model.SessionID, guess model.Guess) (*Result, error) {
	return c.apply(ctx, id, "check", func(g *puzzle.Game) (model.Outcome, error) {
		return g.CheckAnswer(guess)
	})
}

// Reveal shows the answer to the current round
func (c *Controller) Reveal(ctx context.Context, id model.SessionID) (*Result, error) {
	return c.apply(ctx, id, "reveal", func(g *puzzle.Game) (model.Outcome, error) {
		return g.Reveal()
	})
}

// Next moves to the next round once the current one is finished
func (c *Controller) Next(ctx context.Context, id model.SessionID) (*Result, error) {
	return c.apply(ctx, id, "next", func(g *puzzle.Game) (model.Outcome, error) {
		return g.NextRound()
	})
}

// Restart begins a new game in the same session
func (c *Controller) Restart(ctx context.Context, id model.SessionID) (*Result, error) {
	return c.apply(ctx, id, "restart", func(g *puzzle.Game) (model.Outcome, error) {
		g.Restart()
		return model.OutcomeNone, nil
	})
}

// EndSession discards a session. Ending an unknown session is not an error.
func (c *Controller) EndSession(ctx context.Context, id model.SessionID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	c.logger.Info("session ended", slog.String("session_id", string(id)))
	return nil
}

// apply loads a session, runs one action on its game and saves the result.
// Nothing is saved if the action fails.
func (c *Controller) apply(
	ctx context.Context,
	id model.SessionID,
	action string,
	fn func(g *puzzle.Game) (model.Outcome, error),
) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	game := puzzle.Restore(c.wordList.Words(), session.State, c.random)
	outcome, err := fn(game)
	if err != nil {
		c.logger.Debug("action rejected",
			slog.String("session_id", string(id)),
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	session.State = game.Snapshot()
	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Debug("action applied",
		slog.String("session_id", string(id)),
		slog.String("action", action),
		slog.String("outcome", string(outcome)),
		slog.Int("round", game.RoundNumber()),
		slog.Int("score", game.Score()),
	)
	if outcome == model.OutcomeGameOver {
		c.logger.Info("game completed",
			slog.String("session_id", string(id)),
			slog.Int("score", game.Score()),
		)
	}

	return &Result{SessionID: id, Outcome: outcome, View: game.View()}, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	NewSession(ctx context.Context) (*Result, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	SessionExists(ctx context.Context, id model.SessionID) (bool, error)
	View(ctx context.Context, id model.SessionID) (*Result, error)
	SetSlot(ctx context.Context, id model.SessionID, index int, letter string) (*Result, error)
	Check(ctx context.Context, id model.SessionID, guess model.Guess) (*Result, error)
	Reveal(ctx context.Context, id model.SessionID) (*Result, error)
	Next(ctx context.Context, id model.SessionID) (*Result, error)
	Restart(ctx context.Context, id model.SessionID) (*Result, error)
	EndSession(ctx context.Context, id model.SessionID) error
}

var _ ControllerInterface = (*Controller)(nil)
