// Package password wraps bcrypt behind a small Hasher type so the hashing
// cost is injected from configuration instead of being scattered through the
// codebase as a constant.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and verifies salted one-way password digests.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost factor. Costs outside
// the range bcrypt accepts fall back to the library default; configuration
// validation reports them before this point is reached.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash generates a digest for the given plaintext. bcrypt embeds a fresh
// random salt on every call, so hashing the same plaintext twice yields
// different digests that both verify.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A malformed
// digest verifies as false the same way a wrong password does; callers get a
// single boolean and no way to tell the two cases apart.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
