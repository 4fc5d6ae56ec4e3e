package middleware

import (
	"context"
	"net/http"
	"strings"

	"aeromart/internal/common"
	"aeromart/internal/services"
)

type authEmailKey struct{}

// AuthMiddleware guards the admin write endpoints: a valid bearer token
// from the login endpoint is required.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			common.RespondError(w, nil, "Unauthorized: missing token", http.StatusUnauthorized)
			return
		}

		email, err := services.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			common.RespondError(w, nil, "Unauthorized: invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), authEmailKey{}, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthEmailFromContext returns the email of the authenticated admin.
func AuthEmailFromContext(ctx context.Context) string {
	if email, ok := ctx.Value(authEmailKey{}).(string); ok {
		return email
	}
	return ""
}
