package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/estatedesk/leadbook/internal/entity"
)

type contextKey string

const identityKey contextKey = "identity"

// Auth validates the bearer token and puts the resulting identity in the
// request context. The issuer is opaque to this service: only the shared
// HMAC secret and the sub/email claims matter.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			raw = strings.TrimSpace(raw)
			if !ok || raw == "" {
				unauthorized(w)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				unauthorized(w)
				return
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				unauthorized(w)
				return
			}
			email, _ := claims["email"].(string)

			identity := entity.Identity{ID: sub, Email: email}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the authenticated identity, or a zero
// (anonymous) identity when the middleware did not run.
func IdentityFromContext(ctx context.Context) entity.Identity {
	identity, _ := ctx.Value(identityKey).(entity.Identity)
	return identity
}

// WithIdentity is for tests and internal callers that bypass the HTTP
// middleware.
func WithIdentity(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "authentication required"})
}
