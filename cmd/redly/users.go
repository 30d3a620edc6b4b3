package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/redemly/redly/internal/api"
	"github.com/redemly/redly/internal/export"
	"github.com/redemly/redly/internal/listview"
	"github.com/redemly/redly/internal/model"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Browse shopper accounts",
	}
	cmd.AddCommand(usersListCmd())
	return cmd
}

func userResource(client *api.Client) resource[model.User] {
	dateFmt := func(t time.Time) string {
		if t.IsZero() {
			return "N/A"
		}
		return t.Format("2006-01-02")
	}

	return resource[model.User]{
		title:  "users",
		loader: client.ListUsers,
		schema: listview.Schema[model.User]{
			SearchFields: []listview.Accessor[model.User]{
				func(u model.User) string { return u.Name },
				func(u model.User) string { return u.Email },
				func(u model.User) string { return u.City },
			},
			Fields: map[string]listview.Accessor[model.User]{
				"status": func(u model.User) string { return string(u.Status) },
			},
			DateField: func(u model.User) time.Time { return u.SignedUpAt },
		},
		columns: []string{"ID", "Name", "Email", "City", "Status", "Redeemed", "Signed up"},
		rows: func(u model.User) []string {
			return []string{u.ID, u.Name, u.Email, u.City, string(u.Status), fmt.Sprintf("%d", u.Redemptions), dateFmt(u.SignedUpAt)}
		},
		spec: export.Spec[model.User]{
			Columns: []export.Column[model.User]{
				{Label: "ID", Value: func(u model.User) string { return u.ID }},
				{Label: "Name", Value: func(u model.User) string { return u.Name }},
				{Label: "Email", Value: func(u model.User) string { return u.Email }},
				{Label: "City", Value: func(u model.User) string { return u.City }},
				{Label: "Status", Value: func(u model.User) string { return string(u.Status) }},
				{Label: "Redemptions", Value: func(u model.User) string { return fmt.Sprintf("%d", u.Redemptions) }},
				{Label: "Signed up", Value: func(u model.User) string { return dateFmt(u.SignedUpAt) }},
			},
		},
	}
}

func usersListCmd() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shoppers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runList(cmd.Context(), f, userResource(client))
		},
	}
	addListFlags(cmd, &f)
	return cmd
}
