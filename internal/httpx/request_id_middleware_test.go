package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/httpx"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := httpx.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httpx.RequestIDFrom(r)
	}))

	t.Run("generates an id when none is sent", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/graphql", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get("X-Request-Id"))
	})

	t.Run("keeps and echoes an inbound id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		r.Header.Set("X-Request-Id", "caller-chosen-id")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, "caller-chosen-id", seen)
		assert.Equal(t, "caller-chosen-id", w.Header().Get("X-Request-Id"))
	})
}
