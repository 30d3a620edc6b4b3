package cli

import (
	"fmt"
	"strings"

	"github.com/redemly/redly/internal/listview"
)

// RenderTable renders header and rows as an aligned text table. Cells wider
// than 40 runes are truncated with an ellipsis so one long field cannot
// blow out the layout.
func RenderTable(header []string, rows [][]string) string {
	const maxCell = 40

	clip := func(s string) string {
		runes := []rune(s)
		if len(runes) <= maxCell {
			return s
		}
		return string(runes[:maxCell-1]) + "…"
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len([]rune(h))
	}
	clipped := make([][]string, len(rows))
	for r, row := range rows {
		clipped[r] = make([]string, len(header))
		for i := range header {
			cell := ""
			if i < len(row) {
				cell = clip(row[i])
			}
			clipped[r][i] = cell
			if w := len([]rune(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	pad := func(s string, w int) string {
		return s + strings.Repeat(" ", w-len([]rune(s)))
	}

	var b strings.Builder
	for i, h := range header {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(HeaderStyle.Render(pad(h, widths[i])))
	}
	b.WriteString("\n")
	for i := range header {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(SubtleStyle.Render(strings.Repeat("─", widths[i])))
	}
	b.WriteString("\n")
	for _, row := range clipped {
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(pad(cell, widths[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPager renders the ellipsis page window, e.g. "1 … 9 [10] 11 … 20".
func RenderPager(window []listview.WindowItem, current int) string {
	parts := make([]string, 0, len(window))
	for _, item := range window {
		switch {
		case item.Gap:
			parts = append(parts, SubtleStyle.Render("…"))
		case item.Page == current:
			parts = append(parts, ActivePageStyle.Render(fmt.Sprintf("[%d]", item.Page)))
		default:
			parts = append(parts, fmt.Sprintf("%d", item.Page))
		}
	}
	return strings.Join(parts, " ")
}

// RenderListFooter summarizes a view below its table.
func RenderListFooter(filtered, total, currentPage, pageCount int, window []listview.WindowItem) string {
	summary := fmt.Sprintf("%d of %d records", filtered, total)
	if pageCount > 1 {
		summary += fmt.Sprintf("  ·  page %d/%d  ·  %s", currentPage, pageCount, RenderPager(window, currentPage))
	}
	return SubtleStyle.Render(summary)
}
