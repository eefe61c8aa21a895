package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/missingletters/internal/middleware"
)

// Logging creates request logging middleware for the API, tagging each
// line with the component that served it
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("component", "api")))
}
