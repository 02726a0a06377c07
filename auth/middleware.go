package auth

import (
	"net/http"
	"strings"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/httpx"
)

// JWTMiddleware guards protected routes. It extracts a bearer token from the
// Authorization header, verifies it, and either attaches the verified
// identity to the request context or rejects the request with 401 before the
// handler runs.
func JWTMiddleware(tokens *TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httpx.WriteError(w, r, apperror.NewUnauthorizedError("Authorization header is missing", nil))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				httpx.WriteError(w, r, apperror.NewUnauthorizedError("Authorization header format must be Bearer {token}", nil))
				return
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				httpx.WriteError(w, r, apperror.NewUnauthorizedError("Invalid or expired token", err))
				return
			}

			ctx := NewContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
