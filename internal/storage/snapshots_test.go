package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redemly/redly/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "redly_test.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestReplaceVendors_WholesaleReplace(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	first := []model.Vendor{
		{ID: "v1", Name: "Acme Foods", Status: model.VendorApproved, JoinedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "v2", Name: "Best Buy", Status: model.VendorPending, JoinedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, store.ReplaceVendors(ctx, first))

	got, err := store.GetVendors(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "v1", got[0].ID, "newest joined_at first")

	// A second snapshot replaces everything, no merge.
	second := []model.Vendor{
		{ID: "v3", Name: "Corner Cafe", Status: model.VendorApproved, JoinedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, store.ReplaceVendors(ctx, second))

	got, err = store.GetVendors(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "v3", got[0].ID)
}

func TestReplace_EmptySnapshotClearsResource(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceUsers(ctx, []model.User{
		{ID: "u1", Name: "Sam", Status: model.UserActive},
	}))
	require.NoError(t, store.ReplaceUsers(ctx, nil))

	got, err := store.GetUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCouponsAndPaymentsRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	coupons := []model.Coupon{
		{
			ID: "c1", VendorID: "v1", VendorName: "Acme Foods",
			Title: "20% off", Code: "ACME20", Category: "food",
			Status: model.CouponActive, Discount: 20, Redemptions: 7,
			CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			ExpiresAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, store.ReplaceCoupons(ctx, coupons))

	gotCoupons, err := store.GetCoupons(ctx)
	require.NoError(t, err)
	require.Len(t, gotCoupons, 1)
	assert.Equal(t, "ACME20", gotCoupons[0].Code)
	assert.Equal(t, model.CouponActive, gotCoupons[0].Status)
	assert.Equal(t, 7, gotCoupons[0].Redemptions)

	payments := []model.Payment{
		{
			ID: "p1", VendorID: "v1", VendorName: "Acme Foods",
			Method: "bank", Reference: "TXN-001",
			Status: model.PaymentUnsettled, Amount: 240.50,
			PaidAt: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, store.ReplacePayments(ctx, payments))

	gotPayments, err := store.GetPayments(ctx)
	require.NoError(t, err)
	require.Len(t, gotPayments, 1)
	assert.InDelta(t, 240.50, gotPayments[0].Amount, 0.001)
	assert.Equal(t, model.PaymentUnsettled, gotPayments[0].Status)
}

func TestLastSynced(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	// Never synced.
	synced, err := store.LastSynced(ctx, "vendors")
	require.NoError(t, err)
	assert.True(t, synced.IsZero())

	before := time.Now().UTC().Add(-time.Second)
	require.NoError(t, store.ReplaceVendors(ctx, nil))

	synced, err = store.LastSynced(ctx, "vendors")
	require.NoError(t, err)
	assert.True(t, synced.After(before))
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newTestStorage(t)
	require.NoError(t, store.Migrate(context.Background()))
	require.NoError(t, store.Migrate(context.Background()))
}
