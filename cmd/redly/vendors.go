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

func vendorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Review and manage marketplace vendors",
		Long:  `List vendors with filters and export, and move them through onboarding.`,
	}

	cmd.AddCommand(vendorsListCmd())
	cmd.AddCommand(vendorsStatusCmd("approve", model.VendorApproved, "Approve a pending vendor"))
	cmd.AddCommand(vendorsStatusCmd("suspend", model.VendorSuspended, "Suspend a vendor"))

	return cmd
}

func vendorResource(client *api.Client) resource[model.Vendor] {
	dateFmt := func(t time.Time) string {
		if t.IsZero() {
			return "N/A"
		}
		return t.Format("2006-01-02")
	}

	return resource[model.Vendor]{
		title:  "vendors",
		loader: client.ListVendors,
		schema: listview.Schema[model.Vendor]{
			SearchFields: []listview.Accessor[model.Vendor]{
				func(v model.Vendor) string { return v.Name },
				func(v model.Vendor) string { return v.Email },
				func(v model.Vendor) string { return v.City },
			},
			Fields: map[string]listview.Accessor[model.Vendor]{
				"status":   func(v model.Vendor) string { return string(v.Status) },
				"category": func(v model.Vendor) string { return v.Category },
			},
			DateField: func(v model.Vendor) time.Time { return v.JoinedAt },
		},
		columns: []string{"ID", "Name", "Email", "Category", "City", "Status", "Joined"},
		rows: func(v model.Vendor) []string {
			return []string{v.ID, v.DisplayName(), v.Email, v.Category, v.City, string(v.Status), dateFmt(v.JoinedAt)}
		},
		spec: export.Spec[model.Vendor]{
			Columns: []export.Column[model.Vendor]{
				{Label: "ID", Value: func(v model.Vendor) string { return v.ID }},
				{Label: "Name", Value: func(v model.Vendor) string { return v.DisplayName() }},
				{Label: "Email", Value: func(v model.Vendor) string { return v.Email }},
				{Label: "Phone", Value: func(v model.Vendor) string { return v.Phone }},
				{Label: "Category", Value: func(v model.Vendor) string { return v.Category }},
				{Label: "City", Value: func(v model.Vendor) string { return v.City }},
				{Label: "Status", Value: func(v model.Vendor) string { return string(v.Status) }},
				{Label: "Joined", Value: func(v model.Vendor) string { return dateFmt(v.JoinedAt) }},
			},
		},
	}
}

func vendorsListCmd() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vendors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runList(cmd.Context(), f, vendorResource(client))
		},
	}
	addListFlags(cmd, &f)
	return cmd
}

func vendorsStatusCmd(use string, status model.VendorStatus, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <vendor-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			vendor, err := client.UpdateVendorStatus(cmd.Context(), args[0], status)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("failed to %s vendor %s", use, args[0]), err)
			}

			name := args[0]
			if vendor != nil {
				name = vendor.DisplayName()
			}
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("vendor %s is now %s", name, status)))
			return nil
		},
	}
}
