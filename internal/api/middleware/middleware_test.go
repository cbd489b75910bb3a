package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	status int
}

type fakeRecorder struct {
	requests []recordedRequest
}

func (f *fakeRecorder) RecordHTTPRequest(method, path string, status int, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method: method, path: path, status: status})
}

type fakeLogger struct {
	lines []string
}

func (f *fakeLogger) Info(format string, v ...interface{}) {
	f.lines = append(f.lines, fmt.Sprintf(format, v...))
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	rec := &fakeRecorder{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(rec))
	r.HandleFunc("/seasons/{seasonId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/seasons/"+id, nil))
	}

	require.Len(t, rec.requests, 3)
	for _, req := range rec.requests {
		assert.Equal(t, recordedRequest{method: http.MethodGet, path: "/seasons/{seasonId}", status: http.StatusNotFound}, req)
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	})
}

func TestLogging(t *testing.T) {
	logger := &fakeLogger{}
	h := RequestID(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/housings", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, logger.lines, 1)
	assert.Contains(t, logger.lines[0], "POST /api/v1/housings - status=201")
	assert.Contains(t, logger.lines[0], "request_id=req-1")
}
