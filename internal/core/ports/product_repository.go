package ports

import (
	"context"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	// Update persists the mutable product fields. BusinessID is never written.
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	UpdateImage(ctx context.Context, id, image string) error
}
