package main

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/redemly/redly/internal/api"
	"github.com/redemly/redly/internal/cli"
	"github.com/redemly/redly/internal/common"
	"github.com/redemly/redly/internal/config"
	"github.com/redemly/redly/internal/storage"
)

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local snapshot cache from the Redemly API",
		Long: `Sync fetches every resource from the Redemly API and replaces the
local snapshot cache wholesale. The dashboard and browse commands fall
back to this cache when the API is unreachable.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			store, err := storage.NewSQLiteStorage(config.DatabasePath())
			if err != nil {
				return common.NewUserError("failed to open snapshot cache", err)
			}
			defer func() {
				_ = store.Close()
			}()

			if err := store.Migrate(cmd.Context()); err != nil {
				return common.NewUserError("failed to migrate snapshot cache", err)
			}

			return runSync(cmd.Context(), client, store)
		},
	}
}

// syncStep fetches one resource and replaces its snapshot.
type syncStep struct {
	name string
	run  func(context.Context) (int, error)
}

func runSync(ctx context.Context, client *api.Client, store *storage.SQLiteStorage) error {
	steps := []syncStep{
		{name: "vendors", run: func(ctx context.Context) (int, error) {
			vendors, err := client.ListVendors(ctx)
			if err != nil {
				return 0, err
			}
			return len(vendors), store.ReplaceVendors(ctx, vendors)
		}},
		{name: "coupons", run: func(ctx context.Context) (int, error) {
			coupons, err := client.ListCoupons(ctx)
			if err != nil {
				return 0, err
			}
			return len(coupons), store.ReplaceCoupons(ctx, coupons)
		}},
		{name: "payments", run: func(ctx context.Context) (int, error) {
			payments, err := client.ListPayments(ctx)
			if err != nil {
				return 0, err
			}
			return len(payments), store.ReplacePayments(ctx, payments)
		}},
		{name: "users", run: func(ctx context.Context) (int, error) {
			users, err := client.ListUsers(ctx)
			if err != nil {
				return 0, err
			}
			return len(users), store.ReplaceUsers(ctx, users)
		}},
	}

	bar := progressbar.NewOptions(len(steps),
		progressbar.OptionSetDescription("Syncing snapshots"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	counts := make(map[string]int, len(steps))
	for _, step := range steps {
		n, err := step.run(ctx)
		if err != nil {
			_ = bar.Clear()
			return common.NewUserError(fmt.Sprintf("failed to sync %s", step.name), err)
		}
		counts[step.name] = n
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	for _, step := range steps {
		fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("synced %d %s", counts[step.name], step.name)))
	}
	return nil
}
