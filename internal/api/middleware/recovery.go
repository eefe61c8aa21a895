package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/missingletters/internal/api/apierr"
	"github.com/mcoot/missingletters/internal/middleware"
)

// Recovery creates panic recovery middleware for the API. The panic is
// logged under the api component and the client gets an INTERNAL_ERROR body.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger.With(slog.String("component", "api")), writeInternalError)
}

func writeInternalError(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
