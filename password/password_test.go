package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/accounts-go/password"
)

// cost 4 (bcrypt minimum) keeps the tests fast
func newTestHasher() *password.Hasher {
	return password.NewHasher(4)
}

func TestHashAndVerify(t *testing.T) {
	h := newTestHasher()

	digest, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "secret1", digest)

	assert.True(t, h.Verify("secret1", digest))
	assert.False(t, h.Verify("wrong-password", digest))
}

func TestHashIsNonDeterministic(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)

	// fresh salt per call: digests differ but both verify
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret1", first))
	assert.True(t, h.Verify("secret1", second))
}

func TestVerifyMalformedDigest(t *testing.T) {
	h := newTestHasher()

	tests := []struct {
		name   string
		digest string
	}{
		{"empty digest", ""},
		{"garbage digest", "not-a-bcrypt-digest"},
		{"truncated digest", "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, h.Verify("secret1", tt.digest))
		})
	}
}

func TestNewHasherClampsInvalidCost(t *testing.T) {
	h := password.NewHasher(99)

	digest, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.True(t, h.Verify("secret1", digest))
}
