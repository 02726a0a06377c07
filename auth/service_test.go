package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/config"
	"github.com/user/accounts-go/password"
	"github.com/user/accounts-go/users"
)

func newTestAuthService() (*Service, *TokenService) {
	hasher := password.NewHasher(4)
	tokens := NewTokenService(&config.AuthConfig{
		JWTSecret: "test-signing-secret",
		TokenTTL:  time.Hour,
	})
	userService := users.NewService(users.NewMemoryRepository(), hasher)
	return NewService(userService, hasher, tokens), tokens
}

func registerTestUser(t *testing.T, s *Service) {
	t.Helper()
	_, err := s.Register(context.Background(), RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
}

func TestRegister(t *testing.T) {
	s, _ := newTestAuthService()

	user, err := s.Register(context.Background(), RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _ := newTestAuthService()
	registerTestUser(t, s)

	_, err := s.Register(context.Background(), RegisterRequest{
		Name:     "B",
		Email:    "a@x.com",
		Password: "secret2",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicateEmail(err))
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	s, tokens := newTestAuthService()
	registerTestUser(t, s)

	token, err := s.Login(context.Background(), LoginRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", identity.Email)
	assert.NotEmpty(t, identity.UserID)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	s, _ := newTestAuthService()
	registerTestUser(t, s)

	// wrong password for a known email
	_, wrongPw := s.Login(context.Background(), LoginRequest{
		Email:    "a@x.com",
		Password: "wrong-password",
	})
	require.Error(t, wrongPw)

	// unknown email entirely
	_, unknown := s.Login(context.Background(), LoginRequest{
		Email:    "ghost@x.com",
		Password: "secret1",
	})
	require.Error(t, unknown)

	// both failures carry the same type, status and message; nothing reveals
	// whether the email exists
	wrongErr, ok := apperror.FromError(wrongPw)
	require.True(t, ok)
	unknownErr, ok := apperror.FromError(unknown)
	require.True(t, ok)

	assert.Equal(t, wrongErr.Type, unknownErr.Type)
	assert.Equal(t, wrongErr.StatusCode(), unknownErr.StatusCode())
	assert.Equal(t, wrongErr.Message, unknownErr.Message)
	assert.Equal(t, "Invalid credentials", wrongErr.Message)
	assert.Equal(t, 401, wrongErr.StatusCode())
}
