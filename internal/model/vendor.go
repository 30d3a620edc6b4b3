// Package model defines the record types exchanged with the Redemly API.
package model

import "time"

// VendorStatus tracks where a vendor sits in the onboarding flow.
type VendorStatus string

const (
	// VendorPending indicates a vendor awaiting admin review.
	VendorPending VendorStatus = "pending"
	// VendorApproved indicates a vendor cleared for the marketplace.
	VendorApproved VendorStatus = "approved"
	// VendorSuspended indicates a vendor removed from the marketplace.
	VendorSuspended VendorStatus = "suspended"
)

// Vendor represents a merchant registered on the marketplace.
type Vendor struct {
	JoinedAt time.Time    `json:"joinedAt"`
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	Category string       `json:"category"`
	City     string       `json:"city"`
	Status   VendorStatus `json:"status"`
	Coupons  int          `json:"coupons"`
}

// DisplayName returns the vendor name with a placeholder for blank records.
func (v Vendor) DisplayName() string {
	if v.Name == "" {
		return "N/A"
	}
	return v.Name
}
