package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

// BusinessService implements business profile operations. Every mutation
// loads the business first and compares its owner against the acting user
// before any write is issued.
type BusinessService struct {
	businesses ports.BusinessRepository
	logger     zerolog.Logger
}

func NewBusinessService(businesses ports.BusinessRepository, logger zerolog.Logger) *BusinessService {
	return &BusinessService{businesses: businesses, logger: logger}
}

// GetOwn returns the business owned by the acting user.
func (s *BusinessService) GetOwn(ctx context.Context, actor *domain.User) (*domain.Business, error) {
	return s.businesses.FindByOwner(ctx, actor.ID)
}

// Update replaces the mutable profile fields of the targeted business.
func (s *BusinessService) Update(ctx context.Context, actor *domain.User, id string, in ports.UpdateBusinessInput) (*domain.Business, error) {
	b, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != actor.ID {
		return nil, domain.ErrForbidden
	}

	b.Name = in.Name
	b.City = in.City
	b.Region = in.Region
	b.Description = in.Description

	if err := s.businesses.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info().Str("business_id", b.ID).Str("owner_id", actor.ID).Msg("business updated")
	return b, nil
}

// SetLogo records a newly uploaded logo file for the targeted business.
func (s *BusinessService) SetLogo(ctx context.Context, actor *domain.User, id, logo string) error {
	b, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b.OwnerID != actor.ID {
		return domain.ErrForbidden
	}
	return s.businesses.UpdateLogo(ctx, b.ID, logo)
}
