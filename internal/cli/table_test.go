package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redemly/redly/internal/listview"
)

func TestRenderTable_AlignsAndPadsCells(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Name"},
		[][]string{
			{"v-1", "Acme Foods"},
			{"v-22", "Bean There"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, rule, two rows
	assert.Contains(t, lines[2], "v-1 ")
	assert.Contains(t, lines[3], "v-22")
}

func TestRenderTable_ClipsLongCells(t *testing.T) {
	long := strings.Repeat("x", 60)
	out := RenderTable([]string{"Title"}, [][]string{{long}})

	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
}

func TestRenderTable_ShortRowGetsEmptyCells(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Name", "City"},
		[][]string{{"v-1"}},
	)
	assert.Contains(t, out, "v-1")
}

func TestRenderPager_EllipsisWindow(t *testing.T) {
	window := listview.Window(10, 20)
	out := RenderPager(window, 10)

	assert.Equal(t, "1 … 9 [10] 11 … 20", out)
}

func TestRenderPager_SmallPageCountShowsEveryPage(t *testing.T) {
	window := listview.Window(2, 3)
	out := RenderPager(window, 2)

	assert.Equal(t, "1 [2] 3", out)
}

func TestRenderListFooter_SinglePageOmitsPager(t *testing.T) {
	out := RenderListFooter(4, 4, 1, 1, listview.Window(1, 1))

	assert.Contains(t, out, "4 of 4 records")
	assert.NotContains(t, out, "page")
}

func TestRenderListFooter_MultiPageIncludesPager(t *testing.T) {
	out := RenderListFooter(25, 40, 2, 3, listview.Window(2, 3))

	assert.Contains(t, out, "25 of 40 records")
	assert.Contains(t, out, "page 2/3")
	assert.Contains(t, out, "[2]")
}
