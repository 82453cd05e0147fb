package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// verificationBody is the HTML sent in account-verification emails. The
// link target carries the signed token as a query parameter.
var verificationBody = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
  <body>
    <div style="display:flex;align-items:center;justify-content:center;flex-direction:column">
      <h3>Account Verification</h3>
      <p>Hi {{.Username}}, thanks for creating an account. Click below to verify your email.</p>
      <a style="margin-top:1rem;padding:1rem;border-radius:0.5rem;font-size:1rem;text-decoration:none;background:#0275d8;color:white"
         href="{{.VerifyURL}}">Verify Email</a>
    </div>
  </body>
</html>`))

type verificationData struct {
	Username  string
	VerifyURL string
}

func renderVerification(username, verifyURL string) (string, error) {
	var buf bytes.Buffer
	if err := verificationBody.Execute(&buf, verificationData{Username: username, VerifyURL: verifyURL}); err != nil {
		return "", fmt.Errorf("render verification email: %w", err)
	}
	return buf.String(), nil
}
