package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/missingletters/internal/api/request"
	"github.com/mcoot/missingletters/internal/api/response"
	"github.com/mcoot/missingletters/internal/model"
	"github.com/mcoot/missingletters/internal/services/game"
)

// GameHandler handles game session endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{gameController: gameController}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.NewSession(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	response.Created(w, response.GameFromResult(result))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.View(r.Context(), sessionID(r))
	h.write(w, result, err)
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.EndSession(r.Context(), sessionID(r)); err != nil {
		writeError(w, err)
		return
	}

	response.NoContent(w)
}

// SetSlot handles PUT /api/v1/games/{id}/slots/{n}, where n is the
// 1-indexed slot number
func (h *GameHandler) SetSlot(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["n"])
	if err != nil {
		badRequest(w, "Slot number must be an integer")
		return
	}

	var req request.SetSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	result, err := h.gameController.SetSlot(r.Context(), sessionID(r), number-1, req.Letter)
	h.write(w, result, err)
}

// Check handles POST /api/v1/games/{id}/check
func (h *GameHandler) Check(w http.ResponseWriter, r *http.Request) {
	// An empty body checks the letters already entered
	var req request.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, "Invalid request body")
		return
	}

	guess := model.Guess{Word: req.Word, Letters: req.Letters}
	result, err := h.gameController.Check(r.Context(), sessionID(r), guess)
	h.write(w, result, err)
}

// Reveal handles POST /api/v1/games/{id}/reveal
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.Reveal(r.Context(), sessionID(r))
	h.write(w, result, err)
}

// Next handles POST /api/v1/games/{id}/next
func (h *GameHandler) Next(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.Next(r.Context(), sessionID(r))
	h.write(w, result, err)
}

// Restart handles POST /api/v1/games/{id}/restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.Restart(r.Context(), sessionID(r))
	h.write(w, result, err)
}

func (h *GameHandler) write(w http.ResponseWriter, result *game.Result, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromResult(result))
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}
