package domain

import "time"

// Business is the storefront owned by a single user. OwnerID is set at
// creation and never reassigned; every user gets exactly one business,
// created synchronously during registration.
type Business struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"business_name"`
	City        string    `json:"city"`
	Region      string    `json:"region"`
	Description string    `json:"business_description"`
	Logo        string    `json:"logo"`
	CreatedAt   time.Time `json:"created_at"`
}
