package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// BusinessRepository defines persistence operations for businesses.
type BusinessRepository interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	FindByID(ctx context.Context, id string) (*domain.Business, error)
	FindByOwner(ctx context.Context, ownerID string) (*domain.Business, error)
	// Update persists the mutable profile fields. OwnerID is never written.
	Update(ctx context.Context, b *domain.Business) error
	UpdateLogo(ctx context.Context, id, logo string) error
}
