package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

const defaultProductImage = "productDefault.jpg"

// ProductCache fronts product reads. A (nil, nil) return means miss; any
// error is logged and treated as a miss so the store remains the source
// of truth.
type ProductCache interface {
	GetList(ctx context.Context) ([]*domain.Product, error)
	SetList(ctx context.Context, products []*domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SetProduct(ctx context.Context, p *domain.Product) error
	// Invalidate drops the cached list and, when id is non-empty, the
	// cached product entry.
	Invalidate(ctx context.Context, id string) error
}

// ProductService implements product operations. Products are owned through
// their parent business: the guard resolves the business and compares its
// owner against the acting user before any write.
type ProductService struct {
	products   ports.ProductRepository
	businesses ports.BusinessRepository
	cache      ProductCache
	logger     zerolog.Logger
}

func NewProductService(
	products ports.ProductRepository,
	businesses ports.BusinessRepository,
	cache ProductCache,
	logger zerolog.Logger,
) *ProductService {
	return &ProductService{
		products:   products,
		businesses: businesses,
		cache:      cache,
		logger:     logger,
	}
}

// List returns all products, served from the cache when warm.
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	if cached, err := s.cache.GetList(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("product list cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetList(ctx, products); err != nil {
		s.logger.Warn().Err(err).Msg("product list cache write failed")
	}
	return products, nil
}

// Get returns a single product, served from the cache when warm.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if cached, err := s.cache.GetProduct(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("product cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetProduct(ctx, p); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("product cache write failed")
	}
	return p, nil
}

// Create adds a product to the acting user's own business.
func (s *ProductService) Create(ctx context.Context, actor *domain.User, in ports.ProductInput) (*domain.Product, error) {
	business, err := s.businesses.FindByOwner(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve business: %w", err)
	}

	created, err := s.products.Create(ctx, &domain.Product{
		BusinessID:      business.ID,
		Name:            in.Name,
		Category:        in.Category,
		OriginalPrice:   in.OriginalPrice,
		NewPrice:        in.NewPrice,
		PercentDiscount: domain.Discount(in.OriginalPrice, in.NewPrice),
		OfferExpiresAt:  in.OfferExpiresAt,
		Image:           defaultProductImage,
		PublishedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, "")
	s.logger.Info().Str("product_id", created.ID).Str("business_id", business.ID).Msg("product created")
	return created, nil
}

// Update replaces the mutable fields of the targeted product.
func (s *ProductService) Update(ctx context.Context, actor *domain.User, id string, in ports.ProductInput) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guardOwner(ctx, actor, p); err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Category = in.Category
	p.OriginalPrice = in.OriginalPrice
	p.NewPrice = in.NewPrice
	p.PercentDiscount = domain.Discount(in.OriginalPrice, in.NewPrice)
	p.OfferExpiresAt = in.OfferExpiresAt

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx, p.ID)
	return p, nil
}

// Delete removes the targeted product.
func (s *ProductService) Delete(ctx context.Context, actor *domain.User, id string) error {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guardOwner(ctx, actor, p); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, p.ID); err != nil {
		return err
	}

	s.invalidate(ctx, p.ID)
	s.logger.Info().Str("product_id", p.ID).Msg("product deleted")
	return nil
}

// SetImage records a newly uploaded image file for the targeted product.
func (s *ProductService) SetImage(ctx context.Context, actor *domain.User, id, image string) error {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guardOwner(ctx, actor, p); err != nil {
		return err
	}
	if err := s.products.UpdateImage(ctx, p.ID, image); err != nil {
		return err
	}

	s.invalidate(ctx, p.ID)
	return nil
}

// guardOwner rejects the mutation unless the acting user owns the
// product's parent business. Runs after the resource load and before any
// write, so a non-owner never causes a partial mutation.
func (s *ProductService) guardOwner(ctx context.Context, actor *domain.User, p *domain.Product) error {
	business, err := s.businesses.FindByID(ctx, p.BusinessID)
	if err != nil {
		return fmt.Errorf("resolve business: %w", err)
	}
	if business.OwnerID != actor.ID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("product cache invalidation failed")
	}
}
