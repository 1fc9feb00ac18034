package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/citykeeper/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// ClaimsFromContext returns the token claims stored by bearerAuth.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// bearerAuth rejects requests without a valid, unexpired bearer token and
// stores the claims in the request context.
func (s *Server) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			writeMessage(w, http.StatusUnauthorized, "missing token")
			return
		}

		claims, err := s.tokens.ValidateToken(token, true)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ajaxOnly limits an endpoint to XMLHttpRequest callers.
func (s *Server) ajaxOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Requested-With") != "XMLHttpRequest" {
			writeMessage(w, http.StatusForbidden, "only ajax calls are allowed")
			return
		}
		next(w, r)
	}
}
