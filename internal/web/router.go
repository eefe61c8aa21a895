package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/missingletters/internal/services/game"
	"github.com/mcoot/missingletters/internal/web/handler"
	"github.com/mcoot/missingletters/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	Register(r, cfg)
	return r
}

// Register adds the web routes to an existing router
func Register(r *mux.Router, cfg RouterConfig) {
	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	sessionMiddleware := middleware.Session(cfg.GameController, cfg.Logger)

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.Logger)

	// Every page belongs to the browser's game session
	pages := r.NewRoute().Subrouter()
	pages.Use(recoveryMiddleware)
	pages.Use(loggingMiddleware)
	pages.Use(flashMiddleware)
	pages.Use(sessionMiddleware)

	pages.HandleFunc("/", gameHandler.View).Methods(http.MethodGet)
	pages.HandleFunc("/check", gameHandler.Check).Methods(http.MethodPost)
	pages.HandleFunc("/reveal", gameHandler.Reveal).Methods(http.MethodPost)
	pages.HandleFunc("/next", gameHandler.Next).Methods(http.MethodPost)
	pages.HandleFunc("/restart", gameHandler.Restart).Methods(http.MethodPost)
	pages.HandleFunc("/new", gameHandler.New).Methods(http.MethodPost)
}
