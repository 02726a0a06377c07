package auth

import (
	"context"
	"errors"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/password"
	"github.com/user/accounts-go/users"
)

// dummyDigest is a valid bcrypt digest of a throwaway string. Login runs a
// comparison against it when the email is unknown so the unknown-email and
// wrong-password paths cost roughly the same amount of work.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service orchestrates registration and login. It owns no state of its own:
// storage belongs to the users service, hashing to the Hasher, token
// signing to the TokenService.
type Service struct {
	users  *users.Service
	hasher *password.Hasher
	tokens *TokenService
}

// NewService creates an auth Service.
func NewService(userService *users.Service, hasher *password.Hasher, tokens *TokenService) *Service {
	return &Service{
		users:  userService,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new account. It delegates to the users service, which
// hashes the password and enforces email uniqueness through the store.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*users.UserResponse, error) {
	return s.users.Create(ctx, users.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
}

// Login validates credentials and issues a bearer token. An unknown email
// and a wrong password produce the same failure; neither the message nor the
// work performed reveals whether the email is registered.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			s.hasher.Verify(req.Password, dummyDigest)
			return "", apperror.NewAuthError("Invalid credentials", nil)
		}
		return "", apperror.NewDatabaseError("failed to look up user", err)
	}

	if !s.hasher.Verify(req.Password, user.HashedPassword) {
		return "", apperror.NewAuthError("Invalid credentials", nil)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", apperror.NewInternalError("failed to issue token", err)
	}
	return token, nil
}
