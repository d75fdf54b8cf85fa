// Package ratelimit provides a Redis-backed fixed-window request limiter.
// Windows are keyed per API client, falling back to the remote address for
// unauthenticated routes. Redis outages fail open; throttling is a guard
// rail, not an availability dependency.
package ratelimit

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	dErrors "idverify/pkg/domain-errors"
	"idverify/pkg/platform/httputil"
	"idverify/pkg/requestcontext"
)

const keyPrefix = "rl:"

// Limiter counts requests per caller per fixed window.
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger *slog.Logger
}

// NewLimiter builds a limiter allowing limit requests per window. A nil
// client disables limiting entirely.
func NewLimiter(client *redis.Client, limit int, window time.Duration, logger *slog.Logger) *Limiter {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{client: client, limit: limit, window: window, logger: logger}
}

// Middleware rejects callers that exceed the window limit with 429.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	if l == nil || l.client == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := l.windowKey(r)

		count, err := l.client.Incr(ctx, key).Result()
		if err != nil {
			l.logger.ErrorContext(ctx, "rate limit check failed, allowing request",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
				l.logger.ErrorContext(ctx, "failed to set rate limit window expiry",
					"request_id", requestcontext.RequestID(ctx),
					"error", err,
				)
			}
		}

		if count > int64(l.limit) {
			w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// windowKey buckets requests by caller and window index so counters reset
// without cleanup jobs.
func (l *Limiter) windowKey(r *http.Request) string {
	caller := requestcontext.ClientID(r.Context())
	if caller == "" {
		caller = remoteIP(r)
	}
	windowIndex := time.Now().UnixNano() / int64(l.window)
	return fmt.Sprintf("%s%s:%d", keyPrefix, caller, windowIndex)
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
