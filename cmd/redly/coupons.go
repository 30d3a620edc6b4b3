package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/redemly/redly/internal/api"
	"github.com/redemly/redly/internal/cli"
	"github.com/redemly/redly/internal/common"
	"github.com/redemly/redly/internal/export"
	"github.com/redemly/redly/internal/listview"
	"github.com/redemly/redly/internal/model"
)

func couponsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coupons",
		Short: "Manage marketplace coupons",
		Long:  `List, create, update, and delete coupons across all vendors.`,
	}

	cmd.AddCommand(couponsListCmd())
	cmd.AddCommand(couponsCreateCmd())
	cmd.AddCommand(couponsUpdateCmd())
	cmd.AddCommand(couponsDeleteCmd())

	return cmd
}

func couponResource(client *api.Client) resource[model.Coupon] {
	dateFmt := func(t time.Time) string {
		if t.IsZero() {
			return "N/A"
		}
		return t.Format("2006-01-02")
	}

	return resource[model.Coupon]{
		title:  "coupons",
		loader: client.ListCoupons,
		schema: listview.Schema[model.Coupon]{
			SearchFields: []listview.Accessor[model.Coupon]{
				func(c model.Coupon) string { return c.Title },
				func(c model.Coupon) string { return c.Code },
				func(c model.Coupon) string { return c.VendorName },
			},
			Fields: map[string]listview.Accessor[model.Coupon]{
				"status":   func(c model.Coupon) string { return string(c.Status) },
				"category": func(c model.Coupon) string { return c.Category },
			},
			DateField: func(c model.Coupon) time.Time { return c.CreatedAt },
		},
		columns: []string{"ID", "Title", "Code", "Vendor", "Category", "Discount", "Status", "Redeemed", "Expires"},
		rows: func(c model.Coupon) []string {
			return []string{
				c.ID, c.Title, c.Code, c.VendorName, c.Category,
				fmt.Sprintf("%.0f%%", c.Discount), string(c.Status),
				fmt.Sprintf("%d", c.Redemptions), dateFmt(c.ExpiresAt),
			}
		},
		spec: export.Spec[model.Coupon]{
			Columns: []export.Column[model.Coupon]{
				{Label: "ID", Value: func(c model.Coupon) string { return c.ID }},
				{Label: "Title", Value: func(c model.Coupon) string { return c.Title }},
				{Label: "Code", Value: func(c model.Coupon) string { return c.Code }},
				{Label: "Vendor", Value: func(c model.Coupon) string { return c.VendorName }},
				{Label: "Category", Value: func(c model.Coupon) string { return c.Category }},
				{Label: "Discount", Value: func(c model.Coupon) string { return fmt.Sprintf("%.0f", c.Discount) }},
				{Label: "Status", Value: func(c model.Coupon) string { return string(c.Status) }},
				{Label: "Redemptions", Value: func(c model.Coupon) string { return fmt.Sprintf("%d", c.Redemptions) }},
				{Label: "Created", Value: func(c model.Coupon) string { return dateFmt(c.CreatedAt) }},
				{Label: "Expires", Value: func(c model.Coupon) string { return dateFmt(c.ExpiresAt) }},
			},
		},
	}
}

func couponsListCmd() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List coupons",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runList(cmd.Context(), f, couponResource(client))
		},
	}
	addListFlags(cmd, &f)
	return cmd
}

// couponFields collects the flag values shared by create and update.
type couponFields struct {
	vendorID string
	title    string
	code     string
	category string
	expires  string
	discount float64
}

func addCouponFlags(cmd *cobra.Command, f *couponFields) {
	cmd.Flags().StringVar(&f.vendorID, "vendor", "", "vendor id")
	cmd.Flags().StringVar(&f.title, "title", "", "coupon title")
	cmd.Flags().StringVar(&f.code, "code", "", "redemption code")
	cmd.Flags().StringVar(&f.category, "category", "", "category")
	cmd.Flags().Float64Var(&f.discount, "discount", 0, "discount percentage")
	cmd.Flags().StringVar(&f.expires, "expires", "", "expiry date (YYYY-MM-DD)")
}

func (f couponFields) toCoupon() (model.Coupon, error) {
	coupon := model.Coupon{
		VendorID: f.vendorID,
		Title:    f.title,
		Code:     f.code,
		Category: f.category,
		Discount: f.discount,
		Status:   model.CouponActive,
	}
	if f.expires != "" {
		expires, err := time.Parse("2006-01-02", f.expires)
		if err != nil {
			return coupon, common.NewUserError(fmt.Sprintf("invalid expiry date %q, want YYYY-MM-DD", f.expires), err)
		}
		coupon.ExpiresAt = expires
	}
	return coupon, nil
}

func couponsCreateCmd() *cobra.Command {
	var f couponFields
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a coupon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.vendorID == "" || f.title == "" {
				return common.NewUserError("--vendor and --title are required", common.ErrMissingConfig)
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			coupon, err := f.toCoupon()
			if err != nil {
				return err
			}

			created, err := client.CreateCoupon(cmd.Context(), coupon)
			if err != nil {
				return common.NewUserError("failed to create coupon", err)
			}

			id := "?"
			if created != nil {
				id = created.ID
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("created coupon %s (%s)", coupon.Title, id)))
			return nil
		},
	}
	addCouponFlags(cmd, &f)
	return cmd
}

func couponsUpdateCmd() *cobra.Command {
	var f couponFields
	var status string
	cmd := &cobra.Command{
		Use:   "update <coupon-id>",
		Short: "Update a coupon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			coupon, err := f.toCoupon()
			if err != nil {
				return err
			}
			coupon.ID = args[0]
			if status != "" {
				coupon.Status = model.CouponStatus(status)
			}

			if _, err := client.UpdateCoupon(cmd.Context(), coupon); err != nil {
				return common.NewUserError(fmt.Sprintf("failed to update coupon %s", args[0]), err)
			}

			fmt.Println(cli.SuccessStyle.Render("updated coupon " + args[0]))
			return nil
		},
	}
	addCouponFlags(cmd, &f)
	cmd.Flags().StringVar(&status, "status", "", "coupon status (active, paused, expired)")
	return cmd
}

func couponsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <coupon-id>",
		Short: "Delete a coupon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if err := client.DeleteCoupon(cmd.Context(), args[0]); err != nil {
				return common.NewUserError(fmt.Sprintf("failed to delete coupon %s", args[0]), err)
			}

			fmt.Println(cli.SuccessStyle.Render("deleted coupon " + args[0]))
			return nil
		},
	}
}
