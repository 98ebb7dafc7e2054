package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, maxRequests int) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimiter(client, "sign-in", maxRequests, time.Minute), mr
}

func signInFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", nil)
	req.RemoteAddr = addr
	return req
}

func TestRateLimiter_SlidingWindow(t *testing.T) {
	rl, mr := newTestLimiter(t, 2)
	calls := 0
	h := rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	for _, remaining := range []string{"1", "0"} {
		rec := httptest.NewRecorder()
		h(rec, signInFrom("10.0.0.1:4000"))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, remaining, rec.Header().Get("X-RateLimit-Remaining"))
	}

	rec := httptest.NewRecorder()
	h(rec, signInFrom("10.0.0.1:4001"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	body := decode(t, rec)
	assert.False(t, body.Success)
	assert.True(t, strings.HasPrefix(body.Error, "Too many requests"), body.Error)
	assert.Equal(t, 2, calls)

	rec = httptest.NewRecorder()
	h(rec, signInFrom("10.0.0.2:4000"))
	assert.Equal(t, http.StatusOK, rec.Code, "other clients keep their own window")

	assert.True(t, mr.Exists("ratelimit:sign-in:10.0.0.1"))
	assert.Greater(t, mr.TTL("ratelimit:sign-in:10.0.0.1"), time.Minute)
}

func TestRateLimiter_RedisDownAllowsRequest(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	rl := NewRateLimiter(client, "sign-in", 1, time.Minute)
	mr.Close()

	rec := httptest.NewRecorder()
	rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})(rec, signInFrom("10.0.0.1:4000"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}
