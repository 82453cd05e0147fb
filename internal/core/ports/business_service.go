package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// UpdateBusinessInput carries the mutable business profile fields.
type UpdateBusinessInput struct {
	Name        string
	City        string
	Region      string
	Description string
}

// BusinessService defines use-case operations on businesses. Mutations
// require the acting user to own the targeted business.
type BusinessService interface {
	GetOwn(ctx context.Context, actor *domain.User) (*domain.Business, error)
	Update(ctx context.Context, actor *domain.User, id string, in UpdateBusinessInput) (*domain.Business, error)
	SetLogo(ctx context.Context, actor *domain.User, id, logo string) error
}
