package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/msomdec/spendsmarter-api/internal/service"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// UserIDFromContext extracts the authenticated user's ID from the request
// context. The second return is false if the request was not authenticated.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDContextKey).(int64)
	return id, ok
}

// RequireAuth protects routes requiring authentication. It extracts the bearer
// token from the Authorization header (the part after the first space),
// validates it, and binds the decoded user ID to the request context.
// Missing token and invalid token get distinct 401 messages.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		userID, err := auth.ValidateToken(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	_, token, found := strings.Cut(header, " ")
	if !found {
		return "", false
	}
	return token, true
}
