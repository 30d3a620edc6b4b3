// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/redemly/redly/internal/model"
)

// MarketplaceAPI defines the contract for the Redemly collaborator API.
type MarketplaceAPI interface {
	// List operations
	ListVendors(ctx context.Context) ([]model.Vendor, error)
	ListCoupons(ctx context.Context) ([]model.Coupon, error)
	ListPayments(ctx context.Context) ([]model.Payment, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListNews(ctx context.Context) ([]model.NewsItem, error)
	ListFunFacts(ctx context.Context) ([]model.FunFact, error)

	// Vendor onboarding
	UpdateVendorStatus(ctx context.Context, vendorID string, status model.VendorStatus) (*model.Vendor, error)

	// Coupon CRUD
	CreateCoupon(ctx context.Context, coupon model.Coupon) (*model.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon model.Coupon) (*model.Coupon, error)
	DeleteCoupon(ctx context.Context, couponID string) error

	// Payment reconciliation
	SettlePayment(ctx context.Context, paymentID string) (*model.Payment, error)

	// Content management
	CreateNews(ctx context.Context, item model.NewsItem) (*model.NewsItem, error)
	DeleteNews(ctx context.Context, newsID string) error
	CreateFunFact(ctx context.Context, fact model.FunFact) (*model.FunFact, error)
	DeleteFunFact(ctx context.Context, factID string) error
}

// SnapshotStore defines the contract for the local snapshot cache.
type SnapshotStore interface {
	ReplaceVendors(ctx context.Context, vendors []model.Vendor) error
	GetVendors(ctx context.Context) ([]model.Vendor, error)
	ReplaceCoupons(ctx context.Context, coupons []model.Coupon) error
	GetCoupons(ctx context.Context) ([]model.Coupon, error)
	ReplacePayments(ctx context.Context, payments []model.Payment) error
	GetPayments(ctx context.Context) ([]model.Payment, error)
	ReplaceUsers(ctx context.Context, users []model.User) error
	GetUsers(ctx context.Context) ([]model.User, error)
	LastSynced(ctx context.Context, resource string) (time.Time, error)
	Migrate(ctx context.Context) error
	Close() error
}

// ReportWriter defines the contract for spreadsheet report targets.
type ReportWriter interface {
	Write(ctx context.Context, title string, header []string, rows [][]string) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
