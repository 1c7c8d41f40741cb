package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateWelcome is sent once after a successful registration.
const TemplateWelcome = "welcome"

var welcomeTpl = template.Must(template.New(TemplateWelcome).Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #222;">
    <h2>Welcome{{if .Name}}, {{.Name}}{{end}}!</h2>
    <p>Your account has been created. You can now sign in with your CNIC and password.</p>
    <p style="color:#888; font-size:12px;">If you did not create this account, please ignore this email.</p>
  </body>
</html>`))

// Render returns subject, text and html bodies for the named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateWelcome:
		var buf bytes.Buffer
		if err := welcomeTpl.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		return "Welcome aboard",
			"Your account has been created. You can now sign in with your CNIC and password.",
			buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
