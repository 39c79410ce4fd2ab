package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "default shards when zero", numShards: 0, wantShards: defaultNumShards},
		{name: "default shards when negative", numShards: -1, wantShards: defaultNumShards},
		{name: "custom shard count", numShards: 8, wantShards: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			defer rl.Stop()

			assert.Len(t, rl.shards, tt.wantShards)
			assert.Equal(t, 10, rl.rate)
			assert.Equal(t, time.Minute, rl.window)
		})
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	tests := []struct {
		name        string
		rate        int
		requests    int
		wantAllowed int
	}{
		{name: "all requests allowed under limit", rate: 5, requests: 3, wantAllowed: 3},
		{name: "exact rate limit", rate: 5, requests: 5, wantAllowed: 5},
		{name: "exceeds rate limit", rate: 5, requests: 8, wantAllowed: 5},
		{name: "single request allowed", rate: 1, requests: 3, wantAllowed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(tt.rate, time.Minute, 4)
			defer rl.Stop()

			allowed := 0
			for i := 0; i < tt.requests; i++ {
				if ok, _ := rl.allow("client"); ok {
					allowed++
				}
			}

			assert.Equal(t, tt.wantAllowed, allowed)
		})
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewShardedRateLimiter(1, 20*time.Millisecond, 1)
	defer rl.Stop()

	ok, _ := rl.allow("client")
	assert.True(t, ok)
	ok, _ = rl.allow("client")
	assert.False(t, ok)

	time.Sleep(30 * time.Millisecond)

	ok, remaining := rl.allow("client")
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)
}

func TestRateLimiter_Concurrent(t *testing.T) {
	rl := NewRateLimiter(50, time.Minute)
	defer rl.Stop()

	var mu sync.Mutex
	var wg sync.WaitGroup
	allowed := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.allow("shared"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestRateLimiter_RateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(RequestID(), rl.RateLimit())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		codes = append(codes, w.Code)
		last = w
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), "rate_limit_exceeded")
}

func TestRateLimiter_CleanupAndStats(t *testing.T) {
	rl := NewShardedRateLimiter(5, time.Millisecond, 2)
	defer rl.Stop()

	rl.allow("a")
	rl.allow("b")
	total, perShard := rl.Stats()
	assert.Equal(t, 2, total)
	assert.Len(t, perShard, 2)

	time.Sleep(5 * time.Millisecond)
	rl.cleanupExpired()

	total, _ = rl.Stats()
	assert.Equal(t, 0, total)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	assert.False(t, rl.Stopped())

	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
	assert.True(t, rl.Stopped())
}
