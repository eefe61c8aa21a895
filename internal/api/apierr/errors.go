package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/missingletters/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidLetter    = "INVALID_LETTER"
	CodeSlotOutOfRange   = "SLOT_OUT_OF_RANGE"
	CodeSlotLocked       = "SLOT_LOCKED"
	CodeRoundFinished    = "ROUND_FINISHED"
	CodeRoundNotFinished = "ROUND_NOT_FINISHED"
	CodeGameOver         = "GAME_OVER"
	CodeNoRound          = "NO_ROUND"
	CodeSessionNotFound  = "SESSION_NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer. Error
// responses are never cached, like game responses.
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Game session not found"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letter must be a single letter a-z"}}
	case errors.Is(err, model.ErrSlotOutOfRange):
		return &httpError{http.StatusBadRequest, APIError{CodeSlotOutOfRange, "No such missing letter slot"}}
	case errors.Is(err, model.ErrSlotLocked):
		return &httpError{http.StatusConflict, APIError{CodeSlotLocked, "Slot is locked"}}
	case errors.Is(err, model.ErrRoundFinished):
		return &httpError{http.StatusConflict, APIError{CodeRoundFinished, "Round is already finished"}}
	case errors.Is(err, model.ErrRoundNotFinished):
		return &httpError{http.StatusConflict, APIError{CodeRoundNotFinished, "Finish the round before moving on"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is over, restart to play again"}}
	case errors.Is(err, model.ErrNoRound):
		return &httpError{http.StatusConflict, APIError{CodeNoRound, "No round in progress"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
