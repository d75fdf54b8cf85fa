//go:build integration

package ratelimit

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"idverify/pkg/requestcontext"
	"idverify/pkg/testutil/containers"
)

func TestLimiterEnforcesWindow(t *testing.T) {
	rc := containers.NewRedisContainer(t)

	limiter := NewLimiter(rc.Client, 3, time.Minute, slog.New(slog.DiscardHandler))
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	request := func(clientID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(requestcontext.WithClientID(req.Context(), clientID))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, request("client-1").Code)
	}

	rec := request("client-1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Other callers keep their own windows.
	assert.Equal(t, http.StatusNoContent, request("client-2").Code)
}
