package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/redemly/redly/internal/api"
	"github.com/redemly/redly/internal/cli"
	"github.com/redemly/redly/internal/common"
	"github.com/redemly/redly/internal/config"
	"github.com/redemly/redly/internal/export"
	"github.com/redemly/redly/internal/listview"
)

// listFlags is the shared flag set every list command accepts. One flag
// set, one pipeline: the per-resource commands only supply their schema
// and columns.
type listFlags struct {
	search       string
	status       string
	category     string
	dateRange    string
	exportFormat string
	out          string
	page         int
	pageSize     int
	limit        int
	sheets       bool
}

func addListFlags(cmd *cobra.Command, f *listFlags) {
	cmd.Flags().StringVar(&f.search, "search", "", "free-text search")
	cmd.Flags().StringVar(&f.status, "status", listview.All, "status filter")
	cmd.Flags().StringVar(&f.category, "category", listview.All, "category filter")
	cmd.Flags().StringVar(&f.dateRange, "range", "all", "date range (today, this-week, last-week, this-month, last-month, this-year)")
	cmd.Flags().IntVar(&f.page, "page", 1, "page number")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "rows per page")
	cmd.Flags().StringVar(&f.exportFormat, "export", "", "export instead of printing (csv, xlsx)")
	cmd.Flags().StringVar(&f.out, "out", "", "export file path")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "max rows to export")
	cmd.Flags().BoolVar(&f.sheets, "sheets", false, "export to Google Sheets instead of printing")
}

func newAPIClient() (*api.Client, error) {
	baseURL, err := config.APIBaseURL()
	if err != nil {
		return nil, err
	}
	return api.NewClient(baseURL)
}

// resource bundles everything one list command needs: how to load, filter,
// display, and export a record type.
type resource[T any] struct {
	loader  listview.Loader[T]
	schema  listview.Schema[T]
	rows    func(T) []string
	title   string
	columns []string
	spec    export.Spec[T]
}

// runList drives the shared pipeline for a one-shot list command:
// load, apply filters from flags, then either print a page or export
// the whole filtered list.
func runList[T any](ctx context.Context, f listFlags, res resource[T]) error {
	pageSize := f.pageSize
	if pageSize <= 0 {
		pageSize = config.PageSize()
	}

	ctrl := listview.NewController(res.loader, res.schema, listview.WithPageSize[T](pageSize))
	if err := ctrl.Load(ctx); err != nil {
		return common.NewUserError(fmt.Sprintf("failed to load %s", res.title), err)
	}

	ctrl.SetSearch(f.search)
	ctrl.SetField("status", f.status)
	ctrl.SetField("category", f.category)
	dateRange, ok := listview.ParseDateRange(f.dateRange)
	if !ok {
		return common.NewUserError(fmt.Sprintf("unknown date range %q", f.dateRange), common.ErrInvalidConfig)
	}
	ctrl.SetRange(dateRange)
	ctrl.GoToPage(f.page)

	if f.sheets {
		return exportToSheets(ctx, ctrl, res, f)
	}
	if f.exportFormat != "" {
		return exportToFile(ctrl, res, f)
	}

	view := ctrl.View()
	if view.FilteredCount == 0 {
		if view.TotalRecords == 0 {
			fmt.Println(cli.SubtleStyle.Render("no " + res.title))
		} else {
			fmt.Println(cli.SubtleStyle.Render("no " + res.title + " match the current filters"))
		}
		return nil
	}

	rows := make([][]string, len(view.Items))
	for i, item := range view.Items {
		rows[i] = res.rows(item)
	}
	fmt.Println(cli.TitleStyle.Render(titleCase(res.title)))
	fmt.Print(cli.RenderTable(res.columns, rows))
	fmt.Println(cli.RenderListFooter(view.FilteredCount, view.TotalRecords, view.CurrentPage, view.PageCount, view.Window))
	return nil
}

func exportToFile[T any](ctrl *listview.Controller[T], res resource[T], f listFlags) error {
	format, err := export.ParseFormat(f.exportFormat)
	if err != nil {
		return common.NewUserError("invalid export format", err)
	}

	spec := res.spec
	spec.Limit = exportLimit(f)

	path := f.out
	if path == "" {
		path = fmt.Sprintf("%s-%s%s", res.title, time.Now().Format("20060102-150405"), format.Ext())
	}

	if err := export.SaveFile(path, format, res.title, ctrl.Filtered(), spec); err != nil {
		if err == common.ErrNothingToExport {
			fmt.Println(cli.WarningStyle.Render("nothing to export, no file written"))
			return nil
		}
		return common.NewUserError("export failed", err)
	}

	fmt.Println(cli.SuccessStyle.Render("exported " + path))
	return nil
}

func exportToSheets[T any](ctx context.Context, ctrl *listview.Controller[T], res resource[T], f listFlags) error {
	sheetsCfg, err := config.LoadSheetsConfig()
	if err != nil {
		return common.NewUserError("Google Sheets is not configured", err)
	}

	writer, err := export.NewSheetsWriter(ctx, *sheetsCfg, slog.Default())
	if err != nil {
		return common.NewUserError("failed to connect to Google Sheets", err)
	}

	spec := res.spec
	spec.Limit = exportLimit(f)

	rows, err := export.Rows(ctrl.Filtered(), spec)
	if err != nil {
		if err == common.ErrNothingToExport {
			fmt.Println(cli.WarningStyle.Render("nothing to export, sheet left untouched"))
			return nil
		}
		return common.NewUserError("export failed", err)
	}

	if err := writer.Write(ctx, "Redemly "+titleCase(res.title), spec.Header(), rows); err != nil {
		return common.NewUserError("failed to write Google Sheets report", err)
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("wrote %d rows to Google Sheets", len(rows))))
	return nil
}

func exportLimit(f listFlags) int {
	if f.limit > 0 {
		return f.limit
	}
	return config.ExportLimit()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
