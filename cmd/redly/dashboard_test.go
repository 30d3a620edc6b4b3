package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/redemly/redly/internal/model"
)

func TestBuildStats_Aggregates(t *testing.T) {
	vendors := []model.Vendor{
		{ID: "v-1", Status: model.VendorApproved},
		{ID: "v-2", Status: model.VendorApproved},
		{ID: "v-3", Status: model.VendorPending},
	}
	coupons := []model.Coupon{
		{ID: "c-1", Status: model.CouponActive},
		{ID: "c-2", Status: model.CouponActive, ExpiresAt: time.Now().Add(-24 * time.Hour)},
		{ID: "c-3", Status: model.CouponPaused},
	}
	payments := []model.Payment{
		{ID: "p-1", Status: model.PaymentSettled, Amount: 100.50},
		{ID: "p-2", Status: model.PaymentSettled, Amount: 49.50},
		{ID: "p-3", Status: model.PaymentUnsettled, Amount: 10},
		{ID: "p-4", Status: model.PaymentFailed, Amount: 5},
	}
	users := []model.User{
		{ID: "u-1", Status: model.UserActive},
		{ID: "u-2", Status: model.UserBlocked},
	}

	stats := buildStats(vendors, coupons, payments, users, false, time.Time{})

	assert.Equal(t, 3, stats.vendors)
	assert.Equal(t, 2, stats.vendorsByStatus[model.VendorApproved])
	assert.Equal(t, 1, stats.vendorsByStatus[model.VendorPending])

	assert.Equal(t, 3, stats.coupons)
	assert.Equal(t, 1, stats.couponsExpired)

	assert.Equal(t, 4, stats.payments)
	assert.InDelta(t, 150.0, stats.settledAmount, 0.001)
	assert.InDelta(t, 10.0, stats.unsettledAmount, 0.001)

	assert.Equal(t, 2, stats.users)
	assert.Equal(t, 1, stats.usersBlocked)
}

func TestRenderDashboard_StaleNoteIncludesSyncTime(t *testing.T) {
	synced := time.Date(2025, 5, 15, 9, 30, 0, 0, time.Local)
	stats := buildStats(nil, nil, nil, nil, true, synced)

	out := renderDashboard(stats)
	assert.Contains(t, out, "last synced snapshot")
	assert.Contains(t, out, "2025-05-15 09:30")
}

func TestRenderDashboard_LiveHasNoStaleNote(t *testing.T) {
	stats := buildStats(nil, nil, nil, nil, false, time.Time{})

	out := renderDashboard(stats)
	assert.NotContains(t, out, "snapshot")
}
