package handler

import (
	"net/http"

	"github.com/mcoot/missingletters/internal/api/apierr"
)

// writeError maps a game controller error onto its JSON error response
func writeError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// badRequest rejects a request whose slot number or body could not be parsed
func badRequest(w http.ResponseWriter, message string) {
	apierr.WriteError(w, apierr.NewInvalidRequestError(message))
}
