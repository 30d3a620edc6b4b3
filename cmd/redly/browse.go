package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redemly/redly/internal/common"
	"github.com/redemly/redly/internal/config"
	"github.com/redemly/redly/internal/listview"
	"github.com/redemly/redly/internal/model"
	"github.com/redemly/redly/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <vendors|coupons|payments|users|news|funfacts>",
		Short: "Browse a resource interactively",
		Long: `Browse opens an interactive list over one resource with live search,
status and date-range filters, ellipsis paging, and export keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			switch strings.ToLower(args[0]) {
			case "vendors":
				return browse(cmd.Context(), vendorResource(client), []string{
					string(model.VendorPending), string(model.VendorApproved), string(model.VendorSuspended),
				})
			case "coupons":
				return browse(cmd.Context(), couponResource(client), []string{
					string(model.CouponActive), string(model.CouponPaused), string(model.CouponExpired),
				})
			case "payments":
				return browse(cmd.Context(), paymentResource(client), []string{
					string(model.PaymentUnsettled), string(model.PaymentSettled), string(model.PaymentFailed),
				})
			case "users":
				return browse(cmd.Context(), userResource(client), []string{
					string(model.UserActive), string(model.UserBlocked),
				})
			case "news":
				return browse(cmd.Context(), newsResource(client), []string{
					string(model.NewsDraft), string(model.NewsPublished),
				})
			case "funfacts":
				return browse(cmd.Context(), funFactResource(client), nil)
			default:
				return common.NewUserError(
					fmt.Sprintf("unknown resource %q, expected vendors, coupons, payments, users, news or funfacts", args[0]),
					common.ErrInvalidResource)
			}
		},
	}
}

func browse[T any](ctx context.Context, res resource[T], statuses []string) error {
	ctrl := listview.NewController(res.loader, res.schema,
		listview.WithPageSize[T](config.PageSize()))

	spec := res.spec
	spec.Limit = config.ExportLimit()

	return tui.Run(ctx, tui.Config[T]{
		Controller: ctrl,
		Rows:       res.rows,
		ExportSpec: spec,
		Title:      res.title,
		ExportDir:  ".",
		Columns:    res.columns,
		Statuses:   statuses,
	})
}
