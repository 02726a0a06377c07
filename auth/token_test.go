package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/accounts-go/config"
)

func newTestTokenService(ttl time.Duration) *TokenService {
	return NewTokenService(&config.AuthConfig{
		JWTSecret: "test-signing-secret",
		TokenTTL:  ttl,
	})
}

func TestIssueAndVerify(t *testing.T) {
	ts := newTestTokenService(time.Hour)

	token, err := ts.Issue("user-123", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.UserID)
	assert.Equal(t, "a@x.com", identity.Email)
}

func TestVerifyExpiredToken(t *testing.T) {
	// a negative TTL produces a token that is already past its expiry
	ts := newTestTokenService(-2 * time.Second)

	token, err := ts.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	_, err = ts.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyTokenNearExpiryBoundary(t *testing.T) {
	// a short but positive TTL is still inside the validity window
	ts := newTestTokenService(2 * time.Second)

	token, err := ts.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.NoError(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := newTestTokenService(time.Hour)
	verifier := NewTokenService(&config.AuthConfig{
		JWTSecret: "a-different-secret",
		TokenTTL:  time.Hour,
	})

	token, err := issuer.Issue("user-123", "a@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	ts := newTestTokenService(time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiJ4In0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	ts := newTestTokenService(time.Hour)

	claims := &Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(unsigned)
	assert.Error(t, err)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	ts := newTestTokenService(time.Hour)

	claims := &Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-secret"))
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.Error(t, err)
}
