package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rentdesk/api-agreements/internal/utils"
)

type ctxKey string

// CtxUserID holds the authenticated admin userid in the request context.
const CtxUserID ctxKey = "userID"

// RequireAdmin guards the admin routes with the session JWT.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			utils.RespondError(w, http.StatusUnauthorized, "Missing token", nil)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ParseAndValidate(raw)
		if err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid token", err)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
