package ports

import (
	"context"
	"time"

	"github.com/shoply/storefront-api/internal/core/domain"
)

// ProductInput carries the fields accepted when creating or updating a product.
type ProductInput struct {
	Name           string
	Category       string
	OriginalPrice  float64
	NewPrice       float64
	OfferExpiresAt time.Time
}

// ProductService defines use-case operations on products. Reads are public;
// mutations require the acting user to own the product's parent business.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, actor *domain.User, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, actor *domain.User, id string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	SetImage(ctx context.Context, actor *domain.User, id, image string) error
}
