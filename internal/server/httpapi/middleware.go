package httpapi

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const accountIDKey ctxKey = "accountID"

// AccountIDFromContext returns the authenticated account ID set by the
// bearer middleware.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	return id, ok
}

// bearerToken extracts the session token from the Authorization header.
// The original web client echoes the header back verbatim, so both
// "Bearer <token>" and a bare "<token>" are accepted.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

// requireAuth validates the session token and stores the subject account ID
// in the request context. Missing, malformed, tampered, and expired tokens
// all yield the same generic 401 so callers learn nothing about whether a
// referenced account exists.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerToken(r)
		if tok == "" {
			s.writeErrors(w, http.StatusUnauthorized, msgSignInRequired)
			return
		}

		accountID, err := s.issuer.Validate(tok)
		if err != nil {
			s.writeErrors(w, http.StatusUnauthorized, msgSignInRequired)
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
