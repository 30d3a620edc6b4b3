package model

import "time"

// UserStatus tracks whether a shopper account is active.
type UserStatus string

const (
	// UserActive indicates a shopper in good standing.
	UserActive UserStatus = "active"
	// UserBlocked indicates a shopper locked out by an admin.
	UserBlocked UserStatus = "blocked"
)

// User represents a shopper account on the marketplace.
type User struct {
	SignedUpAt  time.Time  `json:"signedUpAt"`
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	City        string     `json:"city"`
	Status      UserStatus `json:"status"`
	Redemptions int        `json:"redemptions"`
}
