package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticRoute(*http.Request) string { return "/test" }

func TestMiddleware_AssignsRequestID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	var seen string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}), logger, clockwork.NewFakeClock(), staticRoute)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "request", entry.Message)
	assert.Equal(t, seen, entry.Data["request_id"])
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, "/x", entry.Data["path"])
}

func TestMiddleware_ReusesInboundID(t *testing.T) {
	logger, _ := test.NewNullLogger()
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), logger, clockwork.NewFakeClock(), staticRoute)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogger(t *testing.T) {
	base, hook := test.NewNullLogger()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Logger(req.Context(), base).Info("no id")
	assert.NotContains(t, hook.LastEntry().Data, "request_id")

	quiet, _ := test.NewNullLogger()
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Logger(r.Context(), base).Warn("inside")
	}), quiet, clockwork.NewFakeClock(), staticRoute)
	req.Header.Set(RequestIDHeader, "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "req-1", hook.LastEntry().Data["request_id"])
}
