package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pizzapie/pizzapie-go/internal/crypto"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the resolved caller attached to the request context after
// authentication. Admin reflects the token's role claim as of issuance.
type Identity struct {
	UserID string
	Admin  bool
}

// AdminChecker reports whether a user currently holds the admin role. The
// gateway consults it so the admin gate sees the live record rather than the
// possibly stale role claim baked into the token.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// Authenticate returns middleware that validates a Bearer token from the
// Authorization header and attaches the caller's Identity to the context.
//
// A missing or malformed header is a 401; a header that carries a token the
// verifier rejects (bad signature, expired) is a 403. Each failure terminates
// the request with exactly one response.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "token not provided")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusForbidden, "invalid token")
				return
			}

			identity := Identity{UserID: claims.UserID, Admin: claims.IsAdmin}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly returns middleware that admits only administrators. It reads the
// Identity attached by Authenticate and confirms the role against the live
// user record through the checker; an unknown user or a plain user gets 403.
func AdminOnly(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "user not logged in")
				return
			}

			isAdmin, err := checker.IsAdmin(r.Context(), identity.UserID)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if !isAdmin {
				writeJSONError(w, http.StatusForbidden, "admins only")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFromContext extracts the authenticated identity from the request context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// WithIdentity returns a context carrying the given identity. Intended for tests.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
