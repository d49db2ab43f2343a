package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/contentfactory/pkg/api"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestLimiter(rate int, window time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newRateLimiter(rate, window, logger, clock.Now), clock
}

func TestNewRateLimiter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	limiter := NewRateLimiter(10, time.Minute, logger)

	assert.Equal(t, 10, limiter.rate)
	assert.Equal(t, time.Minute, limiter.window)
	assert.NotNil(t, limiter.buckets)

	limiter.Stop()
	// повторный Stop не паникует
	limiter.Stop()
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("requests over limit are denied", func(t *testing.T) {
		limiter, _ := newTestLimiter(3, time.Minute)

		for i := 0; i < 3; i++ {
			allowed, _ := limiter.Allow("10.0.0.1")
			assert.True(t, allowed, "request %d should be allowed", i+1)
		}

		allowed, retryAfter := limiter.Allow("10.0.0.1")
		assert.False(t, allowed)
		assert.Equal(t, time.Minute, retryAfter)
	})

	t.Run("keys are tracked separately", func(t *testing.T) {
		limiter, _ := newTestLimiter(1, time.Minute)

		allowed, _ := limiter.Allow("10.0.0.1")
		assert.True(t, allowed)
		allowed, _ = limiter.Allow("10.0.0.1")
		assert.False(t, allowed)

		allowed, _ = limiter.Allow("10.0.0.2")
		assert.True(t, allowed)
	})

	t.Run("bucket refills after window", func(t *testing.T) {
		limiter, clock := newTestLimiter(1, time.Minute)

		allowed, _ := limiter.Allow("10.0.0.1")
		require.True(t, allowed)

		clock.now = clock.now.Add(40 * time.Second)
		allowed, retryAfter := limiter.Allow("10.0.0.1")
		assert.False(t, allowed)
		assert.Equal(t, 20*time.Second, retryAfter)

		clock.now = clock.now.Add(20 * time.Second)
		allowed, _ = limiter.Allow("10.0.0.1")
		assert.True(t, allowed)
	})
}

func TestRateLimiter_CleanupOldBuckets(t *testing.T) {
	limiter, clock := newTestLimiter(1, time.Minute)

	limiter.Allow("10.0.0.1")
	clock.now = clock.now.Add(90 * time.Second)
	limiter.Allow("10.0.0.2")

	clock.now = clock.now.Add(60 * time.Second)
	limiter.cleanupOldBuckets()

	assert.NotContains(t, limiter.buckets, "10.0.0.1")
	assert.Contains(t, limiter.buckets, "10.0.0.2")
}

func TestRateLimiter_Middleware(t *testing.T) {
	limiter, _ := newTestLimiter(2, time.Minute)

	calls := 0
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do("192.168.1.1:5000").Code)
	// другой порт того же IP считается тем же клиентом
	assert.Equal(t, http.StatusOK, do("192.168.1.1:5001").Code)

	w := do("192.168.1.1:5002")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, http.StatusText(http.StatusTooManyRequests), resp.Error)

	assert.Equal(t, http.StatusOK, do("192.168.1.2:5000").Code)
	assert.Equal(t, 3, calls)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		want   string
	}{
		{name: "ipv4 with port", remote: "10.1.2.3:4567", want: "10.1.2.3"},
		{name: "ipv6 with port", remote: "[::1]:8080", want: "::1"},
		{name: "bare address from RealIP", remote: "203.0.113.7", want: "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
