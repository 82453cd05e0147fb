package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// SetVerified marks the account as email-verified. The flag only ever
	// moves from false to true.
	SetVerified(ctx context.Context, id string) error
}
