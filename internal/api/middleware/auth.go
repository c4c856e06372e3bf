package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/rbarbosa/accounts-api/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// Auth guards a route with bearer-token authentication. A missing or
// malformed Authorization header is rejected with 401 before the
// verifier is ever consulted; a token that fails verification
// (tampered or expired alike) is rejected with 403. On success the
// token's claims are attached to the request context.
func Auth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Printf("ERROR [middleware.Auth] missing authorization header")
				respondError(w, http.StatusUnauthorized, "Token não fornecido!")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Printf("ERROR [middleware.Auth] invalid authorization header format")
				respondError(w, http.StatusUnauthorized, "Token não fornecido!")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token verification failed: %v", err)
				respondError(w, http.StatusForbidden, "Token inválido!")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, *claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims returns the identity the auth middleware attached to the
// request context.
func GetClaims(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(auth.Claims)
	return claims, ok
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
