package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeTpl = template.Must(template.New(TemplateWelcome).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to the blog, {{.Name}}!</h2>
    <p>Your account <strong>{{.Email}}</strong> is ready. Sign in and publish your first post.</p>
    <p style="color: #888; font-size: 12px;">If you did not create this account, you can ignore this email.</p>
  </body>
</html>`))

// Render renders the named template with data and returns subject, text and
// HTML bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateWelcome:
		var buf bytes.Buffer
		if err = welcomeTpl.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Welcome to the blog"
		text = fmt.Sprintf("Welcome, %v! Your account is ready.", data["Name"])
		html = buf.String()
		return subject, text, html, nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
