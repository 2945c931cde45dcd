package config

import (
	"strings"
	"testing"
)

func TestValidateSecret_ProductionRefusesShortSecret(t *testing.T) {
	t.Parallel()

	for _, secret := range []string{"", "short", strings.Repeat("x", MinSecretLen-1)} {
		c := &Config{Env: "production", JWTSecret: secret}
		if err := c.ValidateSecret(func(string) {}); err == nil {
			t.Errorf("secret %q: expected error in production", secret)
		}
	}
}

func TestValidateSecret_ProductionAcceptsLongSecret(t *testing.T) {
	t.Parallel()

	secret := strings.Repeat("x", MinSecretLen)
	c := &Config{Env: "production", JWTSecret: secret}
	if err := c.ValidateSecret(func(string) {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.JWTSecret != secret {
		t.Fatalf("secret must not be replaced, got %q", c.JWTSecret)
	}
}

func TestValidateSecret_DevelopmentWarnsAndSubstitutes(t *testing.T) {
	t.Parallel()

	var warned string
	c := &Config{Env: "development", JWTSecret: ""}
	if err := c.ValidateSecret(func(msg string) { warned = msg }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warned == "" {
		t.Fatal("expected a warning to be emitted")
	}
	if c.JWTSecret != InsecureDevSecret {
		t.Fatalf("expected insecure default, got %q", c.JWTSecret)
	}
	if len(c.JWTSecret) < MinSecretLen {
		t.Fatalf("substituted secret shorter than %d bytes", MinSecretLen)
	}
}

func TestCORSOrigins_TrimsAndDropsEmpty(t *testing.T) {
	t.Parallel()

	c := &Config{CORSAllowedOrigins: "http://localhost:3000/, https://blog.example.com ,,"}
	got := c.CORSOrigins()
	want := []string{"http://localhost:3000", "https://blog.example.com"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("origin %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
