package httpx

import (
	"context"
	"net/http"

	"libraryapi/internal/entity"
)

type contextKey string

const (
	requestIDKey contextKey = "requestID"
	userKey      contextKey = "user"
)

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithUser stores the authenticated user for the rest of the request.
func ContextWithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user, or nil for anonymous
// requests.
func UserFromContext(ctx context.Context) *entity.User {
	if u, ok := ctx.Value(userKey).(*entity.User); ok {
		return u
	}
	return nil
}

func UserFrom(r *http.Request) *entity.User {
	return UserFromContext(r.Context())
}
