package helpers

import (
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !CompareHashAndPassword(hash, "correct horse battery staple") {
		t.Fatalf("expected password to verify against its own hash")
	}
	if CompareHashAndPassword(hash, "wrong password") {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestHashPassword_SaltFreshness(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (fresh salt per call)")
	}
	if !CompareHashAndPassword(h1, "same input") || !CompareHashAndPassword(h2, "same input") {
		t.Fatalf("both hashes must verify against the original password")
	}
}

func TestCompareHashAndPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	if CompareHashAndPassword("not-a-bcrypt-digest", "whatever") {
		t.Fatalf("malformed digest must verify false")
	}
	if CompareHashAndPassword("", "whatever") {
		t.Fatalf("empty digest must verify false")
	}
}
