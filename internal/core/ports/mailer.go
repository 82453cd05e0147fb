package ports

import "context"

// VerificationEmail is the outbound message handed to the mail collaborator
// after a new account is created.
type VerificationEmail struct {
	To        string
	Username  string
	VerifyURL string
}

// Mailer delivers a verification email. Implementations talk SMTP; callers
// treat delivery as fire-and-forget.
type Mailer interface {
	Send(ctx context.Context, msg VerificationEmail) error
}
