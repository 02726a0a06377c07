package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository implementation. It honors the
// same contract as the postgres implementation — generated ids, sentinel
// errors, unique-email enforcement on write — and is used by the tests and
// for running the service without a database.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]*User
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*User)}
}

// Create stores a new user, generating its id and creation time.
func (m *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.byID {
		if u.Email == user.Email {
			return nil, ErrDuplicateEmail
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	stored := *user
	m.byID[user.ID] = &stored
	return user, nil
}

// FindAll returns all stored users.
func (m *MemoryRepository) FindAll(ctx context.Context) ([]User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]User, 0, len(m.byID))
	for _, u := range m.byID {
		result = append(result, *u)
	}
	return result, nil
}

// FindByID returns the user with the given id, or ErrNotFound.
func (m *MemoryRepository) FindByID(ctx context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

// FindByEmail returns the user with the given email, exact match, or
// ErrNotFound.
func (m *MemoryRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Update overwrites the mutable state of an existing user.
func (m *MemoryRepository) Update(ctx context.Context, user *User) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.byID[user.ID]
	if !ok {
		return nil, ErrNotFound
	}
	for id, u := range m.byID {
		if id != user.ID && u.Email == user.Email {
			return nil, ErrDuplicateEmail
		}
	}

	user.CreatedAt = stored.CreatedAt
	copied := *user
	m.byID[user.ID] = &copied
	return user, nil
}

// Delete removes the user, or returns ErrNotFound.
func (m *MemoryRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

// digestFor returns the stored password digest for a user. Test helper.
func (m *MemoryRepository) digestFor(id string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if u, ok := m.byID[id]; ok {
		return u.HashedPassword
	}
	return ""
}

// size returns the number of stored users. Test helper.
func (m *MemoryRepository) size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}
