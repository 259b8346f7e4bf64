package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter implements per-client token bucket rate limiting.
// Each Limit call gets its own bucket namespace, so the auth and API
// limits do not share tokens.
type RateLimiter struct {
	buckets sync.Map // map[bucketKey]*bucket
	stop    chan struct{}
	once    sync.Once
	scopes  atomic.Int32
	now     func() time.Time
}

type bucketKey struct {
	scope  int32
	client string
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter that evicts idle buckets every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware allowing maxPerMinute requests per client IP.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	scope := rl.scopes.Add(1)

	retryAfter := strconv.Itoa(60/maxPerMinute + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := bucketKey{scope: scope, client: clientIP(r)}
			if !rl.getBucket(key, maxPerMinute).allow(rl.now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr so reconnects share a bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) getBucket(key bucketKey, maxPerMinute int) *bucket {
	if b, ok := rl.buckets.Load(key); ok {
		return b.(*bucket)
	}
	maxTokens := float64(maxPerMinute)
	b, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: maxTokens / 60.0,
		lastRefill: rl.now(),
	})
	return b.(*bucket)
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(b.maxTokens, b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.lastRefill)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.buckets.Range(func(key, value any) bool {
		if value.(*bucket).idleSince(now) > bucketIdleTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}
