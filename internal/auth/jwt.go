package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rakhadjo/bookshelf-be/internal/respond"
)

// Claims defines the JWT claims structure. The subject claim carries the
// authenticated username and is trusted as the caller's identity downstream.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type contextKey string

// identityKey is the context key for the authenticated username.
const identityKey = contextKey("identity")

// TokenService issues and verifies signed identity tokens. The secret is
// fixed for the process lifetime; rotating it invalidates all outstanding
// tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with secret. Tokens expire
// after ttl.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue creates a new signed token for the given username.
func (ts *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify parses and validates a token string and returns the embedded
// username.
func (ts *TokenService) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return ts.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Username, nil
}

// Middleware creates a middleware for protecting routes. It extracts the
// bearer token from the Authorization header, verifies it and stores the
// username in the request context. Requests without a valid token are
// rejected before any handler runs.
func (ts *TokenService) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenStr string
			authHeader := r.Header.Get("Authorization")
			if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}

			if tokenStr == "" {
				respond.Error(w, http.StatusUnauthorized, "Missing auth token")
				return
			}

			username, err := ts.Verify(tokenStr)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "Invalid auth token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identity returns the authenticated username stored by Middleware.
func Identity(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(identityKey).(string)
	return username, ok
}
