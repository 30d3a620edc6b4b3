package tui

import (
	"fmt"
	"strings"

	"github.com/redemly/redly/internal/cli"
	"github.com/redemly/redly/internal/listview"
)

// View renders the full browser screen.
func (m Model[T]) View() string {
	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render("redly · " + m.cfg.Title))
	b.WriteString("\n")

	b.WriteString(m.renderFilterLine())
	b.WriteString("\n\n")

	view := m.cfg.Controller.View()

	if view.Err != nil {
		b.WriteString(cli.ErrorStyle.Render("⚠ API unreachable, showing last loaded records"))
		b.WriteString("\n\n")
	}

	if view.FilteredCount == 0 {
		if view.TotalRecords == 0 {
			b.WriteString(cli.SubtleStyle.Render("no records"))
		} else {
			b.WriteString(cli.SubtleStyle.Render("no records match the current filters"))
		}
		b.WriteString("\n")
	} else {
		rows := make([][]string, len(view.Items))
		for i, item := range view.Items {
			rows[i] = m.cfg.Rows(item)
		}
		b.WriteString(cli.RenderTable(m.cfg.Columns, rows))
	}

	b.WriteString("\n")
	b.WriteString(cli.RenderListFooter(view.FilteredCount, view.TotalRecords, view.CurrentPage, view.PageCount, view.Window))
	b.WriteString("\n")

	if m.flash != "" {
		b.WriteString(cli.WarningStyle.Render(m.flash))
		b.WriteString("\n")
	}

	b.WriteString(cli.SubtleStyle.Render("/ search · s status · d date · c clear · ←/→ page · e csv · x xlsx · r refresh · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model[T]) renderFilterLine() string {
	parts := make([]string, 0, 3)

	if m.searching {
		parts = append(parts, m.search.View())
	} else if q := m.search.Value(); q != "" {
		parts = append(parts, fmt.Sprintf("search: %q", q))
	}

	if m.statusIdx > 0 {
		parts = append(parts, "status: "+m.statusValue())
	}
	if m.rangeValue() != listview.RangeAll {
		parts = append(parts, "range: "+string(m.rangeValue()))
	}

	if m.loading {
		parts = append(parts, cli.SubtleStyle.Render("loading…"))
	}
	if len(parts) == 0 {
		return cli.SubtleStyle.Render("no filters")
	}
	return strings.Join(parts, "  ·  ")
}
