package helpers

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_GenerateAndParse(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte(testSecret), TTL: time.Hour}

	tok, exp, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry must be in the future, got %v", exp)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID mismatch: got %q want %q", claims.UserID, "user-123")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte(testSecret), TTL: -time.Second}

	tok, _, err := m.Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = m.Parse(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte(testSecret), TTL: time.Hour}
	other := &TokenManager{Secret: []byte("another-secret-32-bytes-long!!!!"), TTL: time.Hour}

	tok, _, err := m.Generate("u2")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = other.Parse(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte(testSecret), TTL: time.Hour}

	_, err := m.Parse("not.a.jwt")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
	_, err = m.Parse("")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed for empty string, got %v", err)
	}
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte(testSecret), TTL: time.Hour}

	tok, _, err := m.Generate("u3")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = m.Parse(flipChar(tok, len(tok)-1))
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered signature, got %v", err)
	}
}

func TestTokenManager_TamperedPayload(t *testing.T) {
	t.Parallel()

	m := &TokenManager{Secret: []byte(testSecret), TTL: time.Hour}

	tok, _, err := m.Generate("u4")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	parts[1] = flipChar(parts[1], len(parts[1])/2)

	_, err = m.Parse(strings.Join(parts, "."))
	if err == nil {
		t.Fatalf("expected error for tampered payload, got nil")
	}
	if errors.Is(err, ErrTokenExpired) {
		t.Fatalf("tampering must not report expiry, got %v", err)
	}
}

// flipChar swaps the byte at idx for a different base64url character.
func flipChar(s string, idx int) string {
	b := []byte(s)
	if b[idx] == 'A' {
		b[idx] = 'B'
	} else {
		b[idx] = 'A'
	}
	return string(b)
}
