package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/redemly/redly/internal/cli"
	"github.com/redemly/redly/internal/common"
	"github.com/redemly/redly/internal/config"
	"github.com/redemly/redly/internal/model"
	"github.com/redemly/redly/internal/storage"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show marketplace totals at a glance",
		Long: `Dashboard summarizes vendors, coupons, payouts and shoppers. Live
numbers come from the Redemly API; when the API is unreachable the last
synced snapshot is used instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := loadDashboard(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(renderDashboard(stats))
			return nil
		},
	}
}

// dashboardStats holds the aggregates the dashboard prints.
type dashboardStats struct {
	syncedAt         time.Time
	vendorsByStatus  map[model.VendorStatus]int
	couponsByStatus  map[model.CouponStatus]int
	paymentsByStatus map[model.PaymentStatus]int
	vendors          int
	coupons          int
	couponsExpired   int
	payments         int
	unsettledAmount  float64
	settledAmount    float64
	users            int
	usersBlocked     int
	stale            bool
}

func loadDashboard(ctx context.Context) (dashboardStats, error) {
	client, err := newAPIClient()
	if err != nil {
		return dashboardStats{}, err
	}

	vendors, vErr := client.ListVendors(ctx)
	coupons, cErr := client.ListCoupons(ctx)
	payments, pErr := client.ListPayments(ctx)
	users, uErr := client.ListUsers(ctx)

	if vErr == nil && cErr == nil && pErr == nil && uErr == nil {
		return buildStats(vendors, coupons, payments, users, false, time.Time{}), nil
	}

	slog.Warn("API unreachable, falling back to snapshot cache",
		"error", firstError(vErr, cErr, pErr, uErr))
	return loadDashboardFromSnapshot(ctx)
}

func loadDashboardFromSnapshot(ctx context.Context) (dashboardStats, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return dashboardStats{}, common.NewUserError("API unreachable and no snapshot cache available", err)
	}
	defer func() {
		_ = store.Close()
	}()

	if err := store.Migrate(ctx); err != nil {
		return dashboardStats{}, common.NewUserError("failed to migrate snapshot cache", err)
	}

	vendors, err := store.GetVendors(ctx)
	if err != nil {
		return dashboardStats{}, common.NewUserError("failed to read vendor snapshot", err)
	}
	coupons, err := store.GetCoupons(ctx)
	if err != nil {
		return dashboardStats{}, common.NewUserError("failed to read coupon snapshot", err)
	}
	payments, err := store.GetPayments(ctx)
	if err != nil {
		return dashboardStats{}, common.NewUserError("failed to read payment snapshot", err)
	}
	users, err := store.GetUsers(ctx)
	if err != nil {
		return dashboardStats{}, common.NewUserError("failed to read user snapshot", err)
	}

	syncedAt, err := store.LastSynced(ctx, "vendors")
	if err != nil {
		return dashboardStats{}, err
	}

	return buildStats(vendors, coupons, payments, users, true, syncedAt), nil
}

func buildStats(vendors []model.Vendor, coupons []model.Coupon, payments []model.Payment, users []model.User, stale bool, syncedAt time.Time) dashboardStats {
	now := time.Now()
	stats := dashboardStats{
		vendorsByStatus:  make(map[model.VendorStatus]int),
		couponsByStatus:  make(map[model.CouponStatus]int),
		paymentsByStatus: make(map[model.PaymentStatus]int),
		vendors:          len(vendors),
		coupons:          len(coupons),
		payments:         len(payments),
		users:            len(users),
		stale:            stale,
		syncedAt:         syncedAt,
	}

	for _, v := range vendors {
		stats.vendorsByStatus[v.Status]++
	}
	for _, c := range coupons {
		stats.couponsByStatus[c.Status]++
		if c.Expired(now) {
			stats.couponsExpired++
		}
	}
	for _, p := range payments {
		stats.paymentsByStatus[p.Status]++
		switch p.Status {
		case model.PaymentSettled:
			stats.settledAmount += p.Amount
		case model.PaymentUnsettled:
			stats.unsettledAmount += p.Amount
		}
	}
	for _, u := range users {
		if u.Status == model.UserBlocked {
			stats.usersBlocked++
		}
	}
	return stats
}

func renderDashboard(stats dashboardStats) string {
	out := cli.TitleStyle.Render("Redemly Dashboard") + "\n"
	if stats.stale {
		note := "API unreachable, showing last synced snapshot"
		if !stats.syncedAt.IsZero() {
			note += " from " + stats.syncedAt.Local().Format("2006-01-02 15:04")
		}
		out += cli.WarningStyle.Render(note) + "\n"
	}

	out += "\n" + cli.HeaderStyle.Render("Vendors") + "\n"
	out += fmt.Sprintf("  total %d", stats.vendors)
	out += fmt.Sprintf("  pending %d  approved %d  suspended %d\n",
		stats.vendorsByStatus[model.VendorPending],
		stats.vendorsByStatus[model.VendorApproved],
		stats.vendorsByStatus[model.VendorSuspended])

	out += "\n" + cli.HeaderStyle.Render("Coupons") + "\n"
	out += fmt.Sprintf("  total %d", stats.coupons)
	out += fmt.Sprintf("  active %d  paused %d  expired %d\n",
		stats.couponsByStatus[model.CouponActive],
		stats.couponsByStatus[model.CouponPaused],
		stats.couponsExpired)

	out += "\n" + cli.HeaderStyle.Render("Payouts") + "\n"
	out += fmt.Sprintf("  total %d", stats.payments)
	out += fmt.Sprintf("  unsettled %d (%.2f)  settled %d (%.2f)  failed %d\n",
		stats.paymentsByStatus[model.PaymentUnsettled], stats.unsettledAmount,
		stats.paymentsByStatus[model.PaymentSettled], stats.settledAmount,
		stats.paymentsByStatus[model.PaymentFailed])

	out += "\n" + cli.HeaderStyle.Render("Shoppers") + "\n"
	out += fmt.Sprintf("  total %d  blocked %d\n", stats.users, stats.usersBlocked)

	return out
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
