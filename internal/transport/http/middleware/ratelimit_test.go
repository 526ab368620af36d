package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 2)
	h := rl.Limit(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	h := rl.Limit(okHandler())

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	h.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRateLimiter_TracksIPsIndependently(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(1), 1)
	h := rl.Limit(okHandler())

	reqA := httptest.NewRequest(http.MethodPost, "/api/v1/auth", nil)
	reqA.RemoteAddr = "10.0.0.3:1234"
	h.ServeHTTP(httptest.NewRecorder(), reqA)

	recB := httptest.NewRecorder()
	reqB := httptest.NewRequest(http.MethodPost, "/api/v1/auth", nil)
	reqB.RemoteAddr = "10.0.0.4:1234"
	h.ServeHTTP(recB, reqB)
	assert.Equal(t, http.StatusOK, recB.Code)
}
