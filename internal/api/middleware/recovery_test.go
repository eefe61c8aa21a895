package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/missingletters/internal/api/apierr"
	"github.com/mcoot/missingletters/internal/api/middleware"
	"github.com/mcoot/missingletters/internal/testutil"
)

func TestRecoveryAnswersWithInternalError(t *testing.T) {
	logger, buf := testutil.CaptureLogger()

	handler := middleware.Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("word list exploded")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/games", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

	var resp apierr.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, apierr.CodeInternalError, resp.Error.Code)

	assert.Contains(t, buf.String(), `"msg":"panic recovered"`)
	assert.Contains(t, buf.String(), `"component":"api"`)
	assert.Contains(t, buf.String(), `"error":"word list exploded"`)
}
