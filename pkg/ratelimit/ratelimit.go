// Package ratelimit implements a fixed-window request limiter keyed by user.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gearxp/pkg/auth"
	"github.com/GlebRadaev/gearxp/pkg/utils"
)

// Counter increments key and returns the hit count inside the current window.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

type Limiter struct {
	counter Counter
	limit   int
	window  time.Duration
}

// New returns nil when limiting is off, and a nil *Limiter passes everything through.
func New(counter Counter, limit int, window time.Duration) *Limiter {
	if counter == nil || limit <= 0 || window <= 0 {
		return nil
	}
	return &Limiter{
		counter: counter,
		limit:   limit,
		window:  window,
	}
}

// Allow fails open when the counter is unavailable.
func (l *Limiter) Allow(ctx context.Context, scope, subject string) bool {
	if l == nil {
		return true
	}
	key := fmt.Sprintf("rate_limit:%s:%s", scope, subject)
	count, err := l.counter.Incr(ctx, key, l.window)
	if err != nil {
		zap.L().Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
		return true
	}
	return count <= int64(l.limit)
}

// Middleware limits authenticated callers per user id and anonymous callers per address.
func (l *Limiter) Middleware(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l == nil {
				next.ServeHTTP(w, r)
				return
			}
			subject := r.RemoteAddr
			if userID, ok := auth.UserIDFromContext(r.Context()); ok {
				subject = userID.String()
			}
			if !l.Allow(r.Context(), scope, subject) {
				w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
				utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
