package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/missingletters/internal/api/handler"
	"github.com/mcoot/missingletters/internal/api/middleware"
	"github.com/mcoot/missingletters/internal/services/game"
	"github.com/mcoot/missingletters/internal/services/wordlist"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	GameController  *game.Controller
	WordListService *wordlist.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	Register(r, cfg)
	return r
}

// Register adds the API routes under /api/v1 to an existing router
func Register(r *mux.Router, cfg RouterConfig) {
	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController)
	healthHandler := handler.NewHealthHandler(cfg.WordListService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Game session routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/slots/{n}", gameHandler.SetSlot).Methods(http.MethodPut)
	api.HandleFunc("/games/{id}/check", gameHandler.Check).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/reveal", gameHandler.Reveal).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/next", gameHandler.Next).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/restart", gameHandler.Restart).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
}
