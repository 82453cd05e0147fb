package handler

import (
	"time"

	"github.com/shoply/storefront-api/internal/core/domain"
)

type updateBusinessRequest struct {
	Name        string `json:"business_name"        validate:"required"`
	City        string `json:"city"                 validate:"required"`
	Region      string `json:"region"               validate:"required"`
	Description string `json:"business_description"`
}

// businessResponse is the transport view of a business, kept separate from
// the domain type so the JSON contract is not coupled to internal changes.
type businessResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"business_name"`
	City        string    `json:"city"`
	Region      string    `json:"region"`
	Description string    `json:"business_description"`
	Logo        string    `json:"logo"`
	CreatedAt   time.Time `json:"created_at"`
}

func toBusinessResponse(b *domain.Business) businessResponse {
	return businessResponse{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		City:        b.City,
		Region:      b.Region,
		Description: b.Description,
		Logo:        b.Logo,
		CreatedAt:   b.CreatedAt,
	}
}
