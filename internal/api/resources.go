package api

import (
	"context"
	"net/http"

	"github.com/redemly/redly/internal/model"
)

// ListVendors fetches every vendor registered on the marketplace.
func (c *Client) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	return list[model.Vendor](ctx, c, "/api/vendors", "vendors")
}

// ListCoupons fetches every coupon across all vendors.
func (c *Client) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	return list[model.Coupon](ctx, c, "/api/coupons", "coupons")
}

// ListPayments fetches every vendor payout.
func (c *Client) ListPayments(ctx context.Context) ([]model.Payment, error) {
	return list[model.Payment](ctx, c, "/api/payments", "payments")
}

// ListUsers fetches every shopper account.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	return list[model.User](ctx, c, "/api/users", "users")
}

// ListNews fetches the in-app news feed.
func (c *Client) ListNews(ctx context.Context) ([]model.NewsItem, error) {
	return list[model.NewsItem](ctx, c, "/api/news", "news")
}

// ListFunFacts fetches the rotating fun-facts.
func (c *Client) ListFunFacts(ctx context.Context) ([]model.FunFact, error) {
	return list[model.FunFact](ctx, c, "/api/funfacts", "funfacts")
}

// UpdateVendorStatus moves a vendor through the onboarding flow.
func (c *Client) UpdateVendorStatus(ctx context.Context, vendorID string, status model.VendorStatus) (*model.Vendor, error) {
	payload := map[string]string{"status": string(status)}
	return mutate[model.Vendor](ctx, c, http.MethodPatch, "/api/vendors/"+vendorID, "vendor", payload)
}

// CreateCoupon creates a new marketplace offer.
func (c *Client) CreateCoupon(ctx context.Context, coupon model.Coupon) (*model.Coupon, error) {
	return mutate[model.Coupon](ctx, c, http.MethodPost, "/api/coupons", "coupon", coupon)
}

// UpdateCoupon replaces an existing coupon keyed by its id.
func (c *Client) UpdateCoupon(ctx context.Context, coupon model.Coupon) (*model.Coupon, error) {
	return mutate[model.Coupon](ctx, c, http.MethodPut, "/api/coupons/"+coupon.ID, "coupon", coupon)
}

// DeleteCoupon removes a coupon from the marketplace.
func (c *Client) DeleteCoupon(ctx context.Context, couponID string) error {
	_, err := mutate[struct{}](ctx, c, http.MethodDelete, "/api/coupons/"+couponID, "", nil)
	return err
}

// SettlePayment marks a payout as reconciled against the ledger.
func (c *Client) SettlePayment(ctx context.Context, paymentID string) (*model.Payment, error) {
	payload := map[string]string{"status": string(model.PaymentSettled)}
	return mutate[model.Payment](ctx, c, http.MethodPatch, "/api/payments/"+paymentID, "payment", payload)
}

// CreateNews publishes a new entry in the in-app news feed.
func (c *Client) CreateNews(ctx context.Context, item model.NewsItem) (*model.NewsItem, error) {
	return mutate[model.NewsItem](ctx, c, http.MethodPost, "/api/news", "news", item)
}

// DeleteNews removes a news item.
func (c *Client) DeleteNews(ctx context.Context, newsID string) error {
	_, err := mutate[struct{}](ctx, c, http.MethodDelete, "/api/news/"+newsID, "", nil)
	return err
}

// CreateFunFact adds a rotating fun-fact.
func (c *Client) CreateFunFact(ctx context.Context, fact model.FunFact) (*model.FunFact, error) {
	return mutate[model.FunFact](ctx, c, http.MethodPost, "/api/funfacts", "funfact", fact)
}

// DeleteFunFact removes a fun-fact.
func (c *Client) DeleteFunFact(ctx context.Context, factID string) error {
	_, err := mutate[struct{}](ctx, c, http.MethodDelete, "/api/funfacts/"+factID, "", nil)
	return err
}
