// Package auth implements password hashing and bearer token issuance for the
// bloglist API.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// MinHashCost is the lowest accepted bcrypt work factor. Anything below it is
// too cheap to resist offline brute force.
const MinHashCost = 10

// PasswordHasher produces and verifies salted bcrypt digests.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost, clamped to
// [MinHashCost, bcrypt.MaxCost].
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < MinHashCost {
		cost = MinHashCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the salted one-way digest of plaintext. The plaintext itself
// is never stored or logged.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. bcrypt performs the
// comparison in constant time.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
