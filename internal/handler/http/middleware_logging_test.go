package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWithLogging_PassesResponseThrough verifies the logging decorator is
// transparent to the client: status and body arrive unchanged.
func TestWithLogging_PassesResponseThrough(t *testing.T) {
	h := newTestHandler(t, &stubGate{}, &memClipboard{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/paste", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "created", rec.Body.String())
}
