package model

import "time"

// CouponStatus tracks whether a coupon is live on the marketplace.
type CouponStatus string

const (
	// CouponActive indicates a redeemable coupon.
	CouponActive CouponStatus = "active"
	// CouponPaused indicates a coupon hidden by the vendor or an admin.
	CouponPaused CouponStatus = "paused"
	// CouponExpired indicates a coupon past its expiry date.
	CouponExpired CouponStatus = "expired"
)

// Coupon represents a single marketplace offer.
type Coupon struct {
	CreatedAt   time.Time    `json:"createdAt"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	ID          string       `json:"id"`
	VendorID    string       `json:"vendorId"`
	VendorName  string       `json:"vendorName"`
	Title       string       `json:"title"`
	Code        string       `json:"code"`
	Category    string       `json:"category"`
	Status      CouponStatus `json:"status"`
	Discount    float64      `json:"discount"`
	Redemptions int          `json:"redemptions"`
}

// Expired reports whether the coupon's expiry date has passed.
// A zero ExpiresAt means the coupon never expires.
func (c Coupon) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return c.ExpiresAt.Before(now)
}
