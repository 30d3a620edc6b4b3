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

func newsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Manage the in-app news feed",
	}
	cmd.AddCommand(newsListCmd())
	cmd.AddCommand(newsAddCmd())
	cmd.AddCommand(newsDeleteCmd())
	return cmd
}

func newsResource(client *api.Client) resource[model.NewsItem] {
	dateFmt := func(t time.Time) string {
		if t.IsZero() {
			return "N/A"
		}
		return t.Format("2006-01-02")
	}

	return resource[model.NewsItem]{
		title:  "news",
		loader: client.ListNews,
		schema: listview.Schema[model.NewsItem]{
			SearchFields: []listview.Accessor[model.NewsItem]{
				func(n model.NewsItem) string { return n.Title },
				func(n model.NewsItem) string { return n.Body },
			},
			Fields: map[string]listview.Accessor[model.NewsItem]{
				"status": func(n model.NewsItem) string { return string(n.Status) },
			},
			DateField: func(n model.NewsItem) time.Time { return n.PublishedAt },
		},
		columns: []string{"ID", "Title", "Author", "Status", "Published"},
		rows: func(n model.NewsItem) []string {
			return []string{n.ID, n.Title, n.Author, string(n.Status), dateFmt(n.PublishedAt)}
		},
		spec: export.Spec[model.NewsItem]{
			Columns: []export.Column[model.NewsItem]{
				{Label: "ID", Value: func(n model.NewsItem) string { return n.ID }},
				{Label: "Title", Value: func(n model.NewsItem) string { return n.Title }},
				{Label: "Author", Value: func(n model.NewsItem) string { return n.Author }},
				{Label: "Status", Value: func(n model.NewsItem) string { return string(n.Status) }},
				{Label: "Published", Value: func(n model.NewsItem) string { return dateFmt(n.PublishedAt) }},
			},
		},
	}
}

func newsListCmd() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List news items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runList(cmd.Context(), f, newsResource(client))
		},
	}
	addListFlags(cmd, &f)
	return cmd
}

func newsAddCmd() *cobra.Command {
	var title, body, author string
	var publish bool
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a news item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if title == "" {
				return common.NewUserError("--title is required", common.ErrMissingConfig)
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			item := model.NewsItem{Title: title, Body: body, Author: author, Status: model.NewsDraft}
			if publish {
				item.Status = model.NewsPublished
			}

			if _, err := client.CreateNews(cmd.Context(), item); err != nil {
				return common.NewUserError("failed to add news item", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("added news item %q (%s)", title, item.Status)))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "news title")
	cmd.Flags().StringVar(&body, "body", "", "news body")
	cmd.Flags().StringVar(&author, "author", "", "author name")
	cmd.Flags().BoolVar(&publish, "publish", false, "publish immediately instead of saving a draft")
	return cmd
}

func newsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <news-id>",
		Short: "Delete a news item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			if err := client.DeleteNews(cmd.Context(), args[0]); err != nil {
				return common.NewUserError(fmt.Sprintf("failed to delete news item %s", args[0]), err)
			}
			fmt.Println(cli.SuccessStyle.Render("deleted news item " + args[0]))
			return nil
		},
	}
}

func funFactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "funfacts",
		Short: "Manage home-screen fun facts",
	}
	cmd.AddCommand(funFactsListCmd())
	cmd.AddCommand(funFactsAddCmd())
	cmd.AddCommand(funFactsDeleteCmd())
	return cmd
}

func funFactResource(client *api.Client) resource[model.FunFact] {
	return resource[model.FunFact]{
		title:  "funfacts",
		loader: client.ListFunFacts,
		schema: listview.Schema[model.FunFact]{
			SearchFields: []listview.Accessor[model.FunFact]{
				func(f model.FunFact) string { return f.Text },
			},
			Fields: map[string]listview.Accessor[model.FunFact]{
				"category": func(f model.FunFact) string { return f.Category },
			},
			DateField: func(f model.FunFact) time.Time { return f.CreatedAt },
		},
		columns: []string{"ID", "Text", "Category"},
		rows: func(f model.FunFact) []string {
			return []string{f.ID, f.Text, f.Category}
		},
		spec: export.Spec[model.FunFact]{
			Columns: []export.Column[model.FunFact]{
				{Label: "ID", Value: func(f model.FunFact) string { return f.ID }},
				{Label: "Text", Value: func(f model.FunFact) string { return f.Text }},
				{Label: "Category", Value: func(f model.FunFact) string { return f.Category }},
			},
		},
	}
}

func funFactsListCmd() *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fun facts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			return runList(cmd.Context(), f, funFactResource(client))
		},
	}
	addListFlags(cmd, &f)
	return cmd
}

func funFactsAddCmd() *cobra.Command {
	var text, category string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a fun fact",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if text == "" {
				return common.NewUserError("--text is required", common.ErrMissingConfig)
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if _, err := client.CreateFunFact(cmd.Context(), model.FunFact{Text: text, Category: category}); err != nil {
				return common.NewUserError("failed to add fun fact", err)
			}

			fmt.Println(cli.SuccessStyle.Render("added fun fact"))
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "fact text")
	cmd.Flags().StringVar(&category, "category", "", "fact category")
	return cmd
}

func funFactsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <fact-id>",
		Short: "Delete a fun fact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			if err := client.DeleteFunFact(cmd.Context(), args[0]); err != nil {
				return common.NewUserError(fmt.Sprintf("failed to delete fun fact %s", args[0]), err)
			}
			fmt.Println(cli.SuccessStyle.Render("deleted fun fact " + args[0]))
			return nil
		},
	}
}
