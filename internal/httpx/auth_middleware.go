package httpx

import (
	"net/http"
	"strings"

	"libraryapi/internal/auth"
	"libraryapi/internal/usecase"
)

// AuthMiddleware resolves the acting identity for each request. A missing
// Authorization header means anonymous access and the request proceeds; a
// present but invalid, tampered or expired bearer token rejects the whole
// request. Read operations stay open to anonymous callers, so unauthenticated
// is not an error here.
func AuthMiddleware(secret string, users usecase.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authorization header")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
				return
			}

			user, err := users.GetByID(r.Context(), claims.Sub)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unknown user")
				return
			}

			ctx := ContextWithUser(r.Context(), &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
