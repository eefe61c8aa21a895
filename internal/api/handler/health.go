package handler

import (
	"net/http"

	"github.com/mcoot/missingletters/internal/api/response"
	"github.com/mcoot/missingletters/internal/services/wordlist"
)

// HealthHandler reports service status
type HealthHandler struct {
	wordList *wordlist.Service
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(wordList *wordlist.Service) *HealthHandler {
	return &HealthHandler{wordList: wordList}
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{
		Status:    "ok",
		WordCount: h.wordList.WordCount(),
	})
}
