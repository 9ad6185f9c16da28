package service

import "testing"

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("Commercial123!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "Commercial123!" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Verify("Commercial123!", hash) {
		t.Fatalf("Verify rejected the original password")
	}
}

func TestHasher_SaltUniqueness(t *testing.T) {
	h := NewHasher()

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same password are identical, salt is being reused")
	}
}

func TestHasher_WrongPassword(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("correct")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h.Verify("incorrect", hash) {
		t.Fatalf("Verify accepted the wrong password")
	}
}

func TestHasher_FailsClosedOnMalformedHash(t *testing.T) {
	h := NewHasher()

	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$10$tooshort"} {
		if h.Verify("anything", hash) {
			t.Fatalf("Verify accepted malformed hash %q", hash)
		}
	}
}
