package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Auth puts the caller's user ID on the request context.
//
// A request with no Authorization header is served anonymously. A header
// that is present but is not a usable bearer token, or a token the
// verifier rejects, gets 401 so a client never silently falls back to
// anonymous access.
func Auth(verifier tokenVerifier, logger *slog.Logger) Middleware {
	log := logger.With("middleware", "auth")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(header)
			if !ok {
				unauthenticated(w, "malformed authorization header")
				return
			}

			userID, err := verifier.ValidateToken(r.Context(), token)
			if err != nil {
				log.DebugContext(r.Context(), "token rejected", slog.String("error", err.Error()))
				unauthenticated(w, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
		})
	}
}

func unauthenticated(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", message)
}

// bearerToken extracts the credentials of a "Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
