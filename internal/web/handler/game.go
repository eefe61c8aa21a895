package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mcoot/missingletters/internal/model"
	"github.com/mcoot/missingletters/internal/services/game"
	"github.com/mcoot/missingletters/internal/web/middleware"
	"github.com/mcoot/missingletters/internal/web/templates/layout"
	"github.com/mcoot/missingletters/internal/web/templates/pages"
)

// GameHandler handles the game page and its form actions
type GameHandler struct {
	gameController *game.Controller
	logger         *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameController *game.Controller, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		logger:         logger,
	}
}

// View renders the game for the browser's session
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	id := middleware.GetSessionID(r.Context())

	result, err := h.gameController.View(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to load game", slog.String("session_id", string(id)), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.GameData{
		PageData: layout.PageData{
			Title: "Round " + strconv.Itoa(result.View.RoundNumber),
			Flash: middleware.GetFlash(r.Context()),
		},
		View: result.View,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Game(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Check handles the check form. A non-blank word field is judged as a
// whole word; otherwise the letter fields are judged in slot order.
func (h *GameHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		redirectHome(w, r)
		return
	}

	guess := model.Guess{Word: r.PostFormValue("word")}
	if letters, ok := r.PostForm["letter"]; ok {
		guess.Letters = letters
	}

	_, err := h.gameController.Check(r.Context(), middleware.GetSessionID(r.Context()), guess)
	h.finish(w, r, err)
}

// Reveal handles the reveal button
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	_, err := h.gameController.Reveal(r.Context(), middleware.GetSessionID(r.Context()))
	h.finish(w, r, err)
}

// Next handles the next round button
func (h *GameHandler) Next(w http.ResponseWriter, r *http.Request) {
	_, err := h.gameController.Next(r.Context(), middleware.GetSessionID(r.Context()))
	h.finish(w, r, err)
}

// Restart handles the restart button
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	_, err := h.gameController.Restart(r.Context(), middleware.GetSessionID(r.Context()))
	h.finish(w, r, err)
}

// New abandons the current session and starts a fresh one
func (h *GameHandler) New(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.EndSession(r.Context(), middleware.GetSessionID(r.Context())); err != nil {
		h.finish(w, r, err)
		return
	}

	result, err := h.gameController.NewSession(r.Context())
	if err != nil {
		h.finish(w, r, err)
		return
	}

	middleware.SetSessionCookie(w, result.SessionID)
	redirectHome(w, r)
}

// finish redirects back to the game, flashing any rejected action
func (h *GameHandler) finish(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		msg, ok := errorMessage(err)
		if !ok {
			h.logger.Error("game action failed", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		}
		middleware.SetFlash(w, middleware.FlashError, msg)
	}
	redirectHome(w, r)
}

// errorMessage returns a player-facing message for an error, and whether
// the error was an expected rejection rather than a failure
func errorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, model.ErrInvalidLetter):
		return "Each box takes a single letter a-z.", true
	case errors.Is(err, model.ErrSlotOutOfRange):
		return "Too many letters for this word.", true
	case errors.Is(err, model.ErrSlotLocked), errors.Is(err, model.ErrRoundFinished):
		return "This round is already finished.", true
	case errors.Is(err, model.ErrRoundNotFinished):
		return "Solve or reveal the word first.", true
	case errors.Is(err, model.ErrGameOver):
		return "The game is over. Press Restart to play again.", true
	default:
		return "Something went wrong. Please try again.", false
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
