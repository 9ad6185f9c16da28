package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt. bcrypt generates a fresh random
// salt per call and encodes algorithm, cost and salt into the output, so
// stored hashes are self-describing.
type BcryptHasher struct {
	cost int
}

// NewHasher returns a BcryptHasher at the library default cost.
func NewHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives a salted hash from plaintext.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(out), nil
}

// Verify reports whether plaintext matches hash. A malformed hash simply
// fails the comparison; a corrupted credential record must not be able to
// crash authentication.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
