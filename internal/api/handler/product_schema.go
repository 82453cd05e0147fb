package handler

import (
	"time"

	"github.com/shoply/storefront-api/internal/core/domain"
)

type productRequest struct {
	Name           string    `json:"name"                  validate:"required"`
	Category       string    `json:"category"              validate:"required"`
	OriginalPrice  float64   `json:"original_price"        validate:"required,gt=0"`
	NewPrice       float64   `json:"new_price"             validate:"required,gt=0"`
	OfferExpiresAt time.Time `json:"offer_expiration_date"`
}

type productResponse struct {
	ID              string    `json:"id"`
	BusinessID      string    `json:"business_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	OriginalPrice   float64   `json:"original_price"`
	NewPrice        float64   `json:"new_price"`
	PercentDiscount float64   `json:"percentage_discount"`
	OfferExpiresAt  time.Time `json:"offer_expiration_date"`
	Image           string    `json:"product_image"`
	PublishedAt     time.Time `json:"date_published"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:              p.ID,
		BusinessID:      p.BusinessID,
		Name:            p.Name,
		Category:        p.Category,
		OriginalPrice:   p.OriginalPrice,
		NewPrice:        p.NewPrice,
		PercentDiscount: p.PercentDiscount,
		OfferExpiresAt:  p.OfferExpiresAt,
		Image:           p.Image,
		PublishedAt:     p.PublishedAt,
	}
}

type listProductsResponse struct {
	Data []productResponse `json:"data"`
}
