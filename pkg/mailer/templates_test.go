package mailer

import (
	"strings"
	"testing"
)

func TestRender_Welcome(t *testing.T) {
	t.Parallel()

	subject, text, html, err := Render(TemplateWelcome, map[string]any{
		"Name":  "Alice",
		"Email": "alice@example.com",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if subject == "" || text == "" {
		t.Fatal("subject and text must not be empty")
	}
	if !strings.Contains(html, "Alice") || !strings.Contains(html, "alice@example.com") {
		t.Fatalf("html missing recipient details: %s", html)
	}
}

func TestRender_EscapesHTML(t *testing.T) {
	t.Parallel()

	_, _, html, err := Render(TemplateWelcome, map[string]any{
		"Name":  "<script>alert(1)</script>",
		"Email": "x@example.com",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("name was not escaped: %s", html)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	t.Parallel()

	if _, _, _, err := Render("password-reset", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
