package ports

// PasswordHasher performs one-way, salted password hashing. The hash output
// is self-describing (algorithm, cost and salt are embedded), so Verify
// needs no external parameters.
type PasswordHasher interface {
	// Hash derives a hash from plaintext with a fresh random salt per call.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. It fails closed: a
	// malformed or corrupted hash yields false, never a panic or error.
	Verify(plaintext, hash string) bool
}
