package contentapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_WaitSucceeds(t *testing.T) {
	limiter := NewRateLimiter()

	err := limiter.Wait(context.Background())

	assert.NoError(t, err)
}

func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	limiter := NewRateLimiter()
	limiter.retryUntil = time.Now().Add(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	limiter := NewRateLimiter()
	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{HeaderRetryAfter: []string{"30"}},
	}

	limiter.UpdateFromResponse(resp)

	require.False(t, limiter.retryUntil.IsZero())
	assert.WithinDuration(t, time.Now().Add(30*time.Second), limiter.retryUntil, 2*time.Second)
}

func TestRateLimiter_IgnoresNonTooManyRequests(t *testing.T) {
	limiter := NewRateLimiter()
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{HeaderRetryAfter: []string{"30"}},
	}

	limiter.UpdateFromResponse(resp)

	assert.True(t, limiter.retryUntil.IsZero())
}

func TestRateLimiter_IgnoresMalformedRetryAfter(t *testing.T) {
	limiter := NewRateLimiter()
	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{HeaderRetryAfter: []string{"soon"}},
	}

	limiter.UpdateFromResponse(resp)

	assert.True(t, limiter.retryUntil.IsZero())
}
