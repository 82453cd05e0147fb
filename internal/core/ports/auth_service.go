package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService implements the authentication use cases: registration with a
// synchronously created 1:1 business, token issuance, bearer resolution and
// email-verification consumption.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// IssueAccessToken authenticates the credentials and returns a signed
	// bearer token. Unknown username and wrong password both fail with
	// domain.ErrInvalidCredentials.
	IssueAccessToken(ctx context.Context, username, password string) (string, error)
	// Resolve maps a presented bearer token to the user it identifies.
	// Every failure mode collapses into domain.ErrUnauthorized.
	Resolve(ctx context.Context, token string) (*domain.User, error)
	// VerifyEmail consumes a verification token. Verifying an account that
	// is already verified fails with domain.ErrUnauthorized.
	VerifyEmail(ctx context.Context, token string) (*domain.User, error)
}
