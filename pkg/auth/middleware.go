package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/GlebRadaev/gearxp/pkg/utils"
)

type ContextKey string

const (
	UserIDKey  ContextKey = "userID"
	EmailKey   ContextKey = "email"
	TriggerKey ContextKey = "trigger"
)

// CronKeyHeader carries the shared key of scheduled callers.
const CronKeyHeader = "X-Cron-Key"

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

func WithUser(ctx context.Context, userID uuid.UUID, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, EmailKey, email)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}

func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// IsTrigger reports whether the request was authenticated with the cron key.
func IsTrigger(ctx context.Context) bool {
	ok, _ := ctx.Value(TriggerKey).(bool)
	return ok
}

func authenticate(r *http.Request, tokens TokenValidator) (context.Context, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}

	claims, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil, false
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, false
	}
	return WithUser(r.Context(), userID, claims.Email), true
}

func AuthMiddleware(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, ok := authenticate(r, tokens)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TriggerMiddleware admits scheduled callers presenting the cron key and falls
// back to bearer authentication for everyone else.
func TriggerMiddleware(cronKeyHash string, hasher HashServiceInterface, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key := r.Header.Get(CronKeyHeader); key != "" {
				if !hasher.CompareKey(cronKeyHash, key) {
					utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				ctx := context.WithValue(r.Context(), TriggerKey, true)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			ctx, ok := authenticate(r, tokens)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
