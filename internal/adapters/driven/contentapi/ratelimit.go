package contentapi

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate is the client-side throttle (~4 req/sec). The backend
	// publishes no documented limit; this keeps the sequential per-part
	// create loop from hammering it.
	ProactiveRate = 4.0

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// RateLimiter throttles content API requests.
type RateLimiter struct {
	mu         sync.Mutex
	bucket     *rate.Limiter
	retryUntil time.Time // From Retry-After, zero when not limited
}

// NewRateLimiter creates a new rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	retryUntil := r.retryUntil
	r.mu.Unlock()

	if time.Now().Before(retryUntil) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryUntil)):
		}
	}

	return nil
}

// UpdateFromResponse records a server-imposed backoff from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return
	}

	retryAfter := resp.Header.Get(HeaderRetryAfter)
	if retryAfter == "" {
		return
	}
	seconds, err := strconv.Atoi(retryAfter)
	if err != nil {
		return
	}

	r.mu.Lock()
	r.retryUntil = time.Now().Add(time.Duration(seconds) * time.Second)
	r.mu.Unlock()
}
