package domain

import "time"

// User models a registered storefront account. The password hash never
// leaves the process; IsVerified flips to true exactly once, when the
// account owner follows the emailed verification link.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsVerified   bool      `json:"is_verified"`
	JoinedAt     time.Time `json:"joined_at"`
}
