// Package auth contains the authentication core: token issuance and
// verification, the registration and login flow, the bearer-token middleware
// that guards protected routes, and the HTTP handlers for /auth.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/accounts-go/config"
)

// Identity is the verified subject extracted from a valid token. It is what
// the middleware attaches to the request context.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Claims is the JWT payload: the subject's email alongside the registered
// claims (sub carries the user id, exp the expiry).
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens. The signing key and TTL are
// fixed at construction; rotating the key means restarting the process and
// invalidates every outstanding token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg *config.AuthConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Issue produces a signed token for the given subject. Expiry is issue time
// plus the configured TTL; there is no refresh mechanism, an expired token
// requires a fresh login.
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature integrity and expiry and returns the embedded
// identity. Malformed tokens, wrong signatures, unexpected signing methods
// and expired tokens all fail; the caller treats every failure the same way.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return &Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
