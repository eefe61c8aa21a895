package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/mcoot/missingletters/internal/api"
	"github.com/mcoot/missingletters/internal/factory"
	redisstorage "github.com/mcoot/missingletters/internal/storage/redis"
	"github.com/mcoot/missingletters/internal/web"
)

func main() {
	// A .env file is optional; real environment variables take precedence
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(),
	}))
	slog.SetDefault(logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Build factory config from environment
	cfg := factory.Config{
		WordsPath:   os.Getenv("WORDS_FILE"),
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serverConfig, err := api.ServerConfigFromEnv()
	if err != nil {
		logger.Error("invalid server config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// API routes first so the page routes never see /api requests
	router := mux.NewRouter()
	api.Register(router, api.RouterConfig{
		Logger:          logger,
		GameController:  app.GameController,
		WordListService: app.WordListService,
	})
	web.Register(router, web.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	})

	server := api.NewServer(router, serverConfig, logger)
	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.Int("words", app.WordListService.WordCount()),
	)

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// logLevel reads LOG_LEVEL, defaulting to info
func logLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return level
}
