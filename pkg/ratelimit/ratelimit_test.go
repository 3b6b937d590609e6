package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/gearxp/pkg/auth"
)

type fakeCounter struct {
	hits map[string]int64
	err  error
}

func (f *fakeCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.hits == nil {
		f.hits = map[string]int64{}
	}
	f.hits[key]++
	return f.hits[key], nil
}

func TestNew_Disabled(t *testing.T) {
	assert.Nil(t, New(nil, 10, time.Minute))
	assert.Nil(t, New(&fakeCounter{}, 0, time.Minute))
	assert.Nil(t, New(&fakeCounter{}, 10, 0))
	assert.NotNil(t, New(&fakeCounter{}, 10, time.Minute))
}

func TestLimiter_Allow(t *testing.T) {
	limiter := New(&fakeCounter{}, 2, time.Minute)
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "add-xp", "a"))
	assert.True(t, limiter.Allow(ctx, "add-xp", "a"))
	assert.False(t, limiter.Allow(ctx, "add-xp", "a"))
	assert.True(t, limiter.Allow(ctx, "add-xp", "b"))
}

func TestLimiter_FailsOpen(t *testing.T) {
	limiter := New(&fakeCounter{err: errors.New("redis down")}, 1, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow(context.Background(), "add-xp", "a"))
	}
}

func TestLimiter_NilAllows(t *testing.T) {
	var limiter *Limiter
	assert.True(t, limiter.Allow(context.Background(), "add-xp", "a"))
}

func TestLimiter_Middleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	userID := uuid.New()

	tests := []struct {
		name    string
		limiter *Limiter
		codes   []int
	}{
		{
			name:    "Blocks after limit",
			limiter: New(&fakeCounter{}, 1, time.Minute),
			codes:   []int{http.StatusOK, http.StatusTooManyRequests},
		},
		{
			name:    "Disabled limiter",
			limiter: nil,
			codes:   []int{http.StatusOK, http.StatusOK},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := tt.limiter.Middleware("add-xp")(next)
			for _, code := range tt.codes {
				r := httptest.NewRequest(http.MethodPost, "/api/xp/add", nil)
				r = r.WithContext(auth.WithUser(r.Context(), userID, ""))
				w := httptest.NewRecorder()

				handler.ServeHTTP(w, r)

				assert.Equal(t, code, w.Code)
			}
		})
	}
}
