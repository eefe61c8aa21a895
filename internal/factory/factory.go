package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/missingletters/internal/dependencies/clock"
	"github.com/mcoot/missingletters/internal/dependencies/random"
	"github.com/mcoot/missingletters/internal/model"
	"github.com/mcoot/missingletters/internal/services/game"
	"github.com/mcoot/missingletters/internal/services/wordlist"
	"github.com/mcoot/missingletters/internal/storage"
	"github.com/mcoot/missingletters/internal/storage/memory"
	redisstorage "github.com/mcoot/missingletters/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordListService *wordlist.Service
	GameController  *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// WordsPath is the path to a word list file (optional).
	// If empty, a list previously saved to storage is used, falling back
	// to the built-in list.
	WordsPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app := newWithDependencies(store, clock.New(), random.New(), logger)

	if err := app.loadWordList(ctx, cfg.WordsPath, logger); err != nil {
		return nil, err
	}

	return app, nil
}

// loadWordList installs the configured word list. A file wins over a list
// already in storage; with neither, the built-in list stays.
func (a *App) loadWordList(ctx context.Context, path string, logger *slog.Logger) error {
	if path != "" {
		return a.WordListService.LoadFromFile(ctx, path)
	}

	err := a.WordListService.LoadFromStorage(ctx)
	if errors.Is(err, model.ErrWordListNotLoaded) {
		logger.Info("using built-in word list", slog.Int("word_count", a.WordListService.WordCount()))
		return nil
	}
	return err
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	wordListService := wordlist.New(store, logger)
	gameController := game.NewController(store, wordListService, clk, rnd, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		WordListService: wordListService,
		GameController:  gameController,
	}
}
