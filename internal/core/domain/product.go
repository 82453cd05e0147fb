package domain

import "time"

// Product is a storefront item. It is owned indirectly: mutation rights
// follow the owner of its parent business (BusinessID, set at creation).
type Product struct {
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

// Discount derives the percentage discount from the two prices.
// Returns 0 when the original price is not positive.
func Discount(originalPrice, newPrice float64) float64 {
	if originalPrice <= 0 {
		return 0
	}
	return (originalPrice - newPrice) / originalPrice * 100
}
