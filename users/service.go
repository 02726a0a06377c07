// Package users implements the user resource: the persistence contract for
// account records and the CRUD service on top of it. The auth package builds
// registration and login on this service rather than reaching into the store
// itself.
package users

import (
	"context"
	"errors"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/password"
)

// Service provides user CRUD operations over a Repository, hashing passwords
// before they are ever handed to the store.
type Service struct {
	repo   Repository
	hasher *password.Hasher
}

// NewService creates a user Service.
func NewService(repo Repository, hasher *password.Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Create hashes the password and persists a new user. The lookup before the
// insert gives a friendly error in the common case; the unique constraint in
// the store catches the race between concurrent creates with the same email.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperror.NewDuplicateEmailError("Email already in use", nil)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, apperror.NewDatabaseError("failed to check email", err)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: digest,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperror.NewDuplicateEmailError("Email already in use", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return newUserResponse(created), nil
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]UserResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}

	result := make([]UserResponse, 0, len(all))
	for i := range all {
		result = append(result, *newUserResponse(&all[i]))
	}
	return result, nil
}

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, id string) (*UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return newUserResponse(user), nil
}

// Update applies the provided fields to an existing user. Absent fields stay
// untouched. A changed email is re-checked for uniqueness against other
// users; keeping the current email is not a conflict. A provided password is
// re-hashed before storage.
func (s *Service) Update(ctx context.Context, id string, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, apperror.NewDuplicateEmailError("Email already in use", nil)
		} else if !errors.Is(err, ErrNotFound) {
			return nil, apperror.NewDatabaseError("failed to check email", err)
		}
		user.Email = *req.Email
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Password != nil {
		digest, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, apperror.NewInternalError("failed to hash password", err)
		}
		user.HashedPassword = digest
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, apperror.NewNotFoundError("User not found", nil)
		case errors.Is(err, ErrDuplicateEmail):
			return nil, apperror.NewDuplicateEmailError("Email already in use", nil)
		default:
			return nil, apperror.NewDatabaseError("failed to update user", err)
		}
	}
	return newUserResponse(updated), nil
}

// Delete permanently removes a user. There is no soft-delete.
func (s *Service) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperror.NewNotFoundError("User not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to delete user", err)
	}
	return &DeleteResponse{Deleted: true}, nil
}

// FindByEmail returns the stored user record including the password digest.
// It exists for the login flow; everything outward-facing goes through the
// response types above. Repository sentinels pass through unchanged.
func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}
