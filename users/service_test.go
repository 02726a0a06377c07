package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/password"
)

// cost 4 (bcrypt minimum) keeps the tests fast
func newTestService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository()
	return NewService(repo, password.NewHasher(4)), repo
}

func createTestUser(t *testing.T, s *Service, name, email string) *UserResponse {
	t.Helper()
	resp, err := s.Create(context.Background(), CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: "secret1",
	})
	require.NoError(t, err)
	return resp
}

func TestServiceCreate(t *testing.T) {
	s, repo := newTestService()

	resp := createTestUser(t, s, "A", "a@x.com")

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "A", resp.Name)
	assert.Equal(t, "a@x.com", resp.Email)
	assert.False(t, resp.CreatedAt.IsZero())

	// the stored record holds a digest, not the plaintext
	digest := repo.digestFor(resp.ID)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "secret1", digest)
}

func TestServiceCreateDuplicateEmail(t *testing.T) {
	s, _ := newTestService()

	createTestUser(t, s, "First", "dup@x.com")

	_, err := s.Create(context.Background(), CreateUserRequest{
		Name:     "Second",
		Email:    "dup@x.com",
		Password: "secret2",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicateEmail(err))
	appErr, _ := apperror.FromError(err)
	assert.Equal(t, "Email already in use", appErr.Message)
}

func TestServiceCreateEmailIsCaseSensitive(t *testing.T) {
	s, _ := newTestService()

	createTestUser(t, s, "Lower", "case@x.com")

	// emails are stored and compared exactly as given
	_, err := s.Create(context.Background(), CreateUserRequest{
		Name:     "Upper",
		Email:    "Case@x.com",
		Password: "secret2",
	})
	require.NoError(t, err)
}

func TestServiceGet(t *testing.T) {
	s, _ := newTestService()
	created := createTestUser(t, s, "A", "a@x.com")

	got, err := s.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestServiceGetNotFound(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Get(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	appErr, _ := apperror.FromError(err)
	assert.Equal(t, "User not found", appErr.Message)
}

func TestServiceList(t *testing.T) {
	s, _ := newTestService()
	createTestUser(t, s, "A", "a@x.com")
	createTestUser(t, s, "B", "b@x.com")

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestServiceListEmpty(t *testing.T) {
	s, _ := newTestService()

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestServiceUpdatePartial(t *testing.T) {
	s, _ := newTestService()
	created := createTestUser(t, s, "A", "a@x.com")

	newName := "Anna"
	updated, err := s.Update(context.Background(), created.ID, UpdateUserRequest{Name: &newName})
	require.NoError(t, err)

	// only the provided field changed
	assert.Equal(t, "Anna", updated.Name)
	assert.Equal(t, "a@x.com", updated.Email)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestServiceUpdateOwnEmailIsNotConflict(t *testing.T) {
	s, _ := newTestService()
	created := createTestUser(t, s, "A", "a@x.com")

	same := "a@x.com"
	updated, err := s.Update(context.Background(), created.ID, UpdateUserRequest{Email: &same})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", updated.Email)
}

func TestServiceUpdateDuplicateEmail(t *testing.T) {
	s, _ := newTestService()
	createTestUser(t, s, "A", "a@x.com")
	other := createTestUser(t, s, "B", "b@x.com")

	taken := "a@x.com"
	_, err := s.Update(context.Background(), other.ID, UpdateUserRequest{Email: &taken})
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicateEmail(err))
}

func TestServiceUpdateRehashesPassword(t *testing.T) {
	s, repo := newTestService()
	created := createTestUser(t, s, "A", "a@x.com")
	oldDigest := repo.digestFor(created.ID)

	newPassword := "another-secret"
	_, err := s.Update(context.Background(), created.ID, UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	hasher := password.NewHasher(4)
	newDigest := repo.digestFor(created.ID)
	assert.NotEqual(t, oldDigest, newDigest)
	assert.True(t, hasher.Verify("another-secret", newDigest))
	assert.False(t, hasher.Verify("secret1", newDigest))
}

func TestServiceUpdateNotFound(t *testing.T) {
	s, _ := newTestService()

	name := "Nobody"
	_, err := s.Update(context.Background(), uuid.NewString(), UpdateUserRequest{Name: &name})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestServiceDelete(t *testing.T) {
	s, repo := newTestService()
	created := createTestUser(t, s, "A", "a@x.com")

	result, err := s.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, 0, repo.size())

	// permanently removed, a second delete is a 404
	_, err = s.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestServiceFindByEmailPassesSentinelsThrough(t *testing.T) {
	s, _ := newTestService()

	_, err := s.FindByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
