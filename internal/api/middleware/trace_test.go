package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/sanmei-api/internal/api/shared"
	"github.com/phrazzld/sanmei-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	buf, base := logger.NewCapture()

	var seenTraceID string
	handler := NewTraceMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.NotEmpty(t, seenTraceID)
	assert.Equal(t, seenTraceID, rec.Header().Get(shared.TraceIDHeader))

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "request started", entries[0]["msg"])
	assert.Equal(t, "/health", entries[0]["path"])
	for _, e := range entries {
		assert.Equal(t, seenTraceID, e["trace_id"])
	}
}

func TestTraceMiddlewareFreshIDs(t *testing.T) {
	t.Parallel()

	handler := NewTraceMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, first.Header().Get(shared.TraceIDHeader), second.Header().Get(shared.TraceIDHeader))
}
