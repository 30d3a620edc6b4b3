package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redemly/redly/internal/export"
	"github.com/redemly/redly/internal/listview"
)

type browseRecord struct {
	Name   string
	Status string
}

func browseModel(t *testing.T, records []browseRecord) Model[browseRecord] {
	t.Helper()

	ctrl := listview.NewController(
		func(_ context.Context) ([]browseRecord, error) { return records, nil },
		listview.Schema[browseRecord]{
			SearchFields: []listview.Accessor[browseRecord]{
				func(r browseRecord) string { return r.Name },
			},
			Fields: map[string]listview.Accessor[browseRecord]{
				"status": func(r browseRecord) string { return r.Status },
			},
		},
		listview.WithPageSize[browseRecord](2),
	)
	require.NoError(t, ctrl.Load(context.Background()))

	return NewModel(Config[browseRecord]{
		Title:      "vendors",
		Columns:    []string{"Name", "Status"},
		Statuses:   []string{"active", "paused"},
		Controller: ctrl,
		Rows:       func(r browseRecord) []string { return []string{r.Name, r.Status} },
		ExportSpec: export.Spec[browseRecord]{
			Columns: []export.Column[browseRecord]{
				{Label: "Name", Value: func(r browseRecord) string { return r.Name }},
			},
		},
		ExportDir: t.TempDir(),
	})
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_StatusCycleResetsPage(t *testing.T) {
	records := []browseRecord{
		{Name: "a", Status: "active"},
		{Name: "b", Status: "active"},
		{Name: "c", Status: "active"},
		{Name: "d", Status: "paused"},
	}
	m := browseModel(t, records)
	m.cfg.Controller.GoToPage(2)
	require.Equal(t, 2, m.cfg.Controller.CurrentPage())

	next, _ := m.Update(keyPress('s'))
	m = next.(Model[browseRecord])

	assert.Equal(t, 1, m.cfg.Controller.CurrentPage())
	assert.Equal(t, "active", m.statusValue())

	view := m.cfg.Controller.View()
	assert.Equal(t, 3, view.FilteredCount)
}

func TestModel_SearchKeystrokesFilterLive(t *testing.T) {
	m := browseModel(t, []browseRecord{
		{Name: "Acme Foods", Status: "active"},
		{Name: "Best Buy", Status: "active"},
	})

	next, _ := m.Update(keyPress('/'))
	m = next.(Model[browseRecord])
	require.True(t, m.searching)

	for _, r := range "acme" {
		next, _ = m.Update(keyPress(r))
		m = next.(Model[browseRecord])
	}

	view := m.cfg.Controller.View()
	require.Equal(t, 1, view.FilteredCount)
	assert.Equal(t, "Acme Foods", view.Items[0].Name)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model[browseRecord])
	assert.False(t, m.searching)
}

func TestModel_ViewShowsDistinctEmptyStates(t *testing.T) {
	empty := browseModel(t, nil)
	assert.Contains(t, empty.View(), "no records")

	filteredOut := browseModel(t, []browseRecord{{Name: "a", Status: "active"}})
	filteredOut.cfg.Controller.SetSearch("zzz")
	assert.Contains(t, filteredOut.View(), "no records match")

	stale := browseModel(t, []browseRecord{{Name: "a", Status: "active"}})
	next, _ := stale.Update(recordsLoadedMsg{err: errors.New("boom")})
	stale = next.(Model[browseRecord])
	assert.Contains(t, stale.View(), "load failed")
}

func TestModel_ExportWithNoRowsWarnsAndWritesNothing(t *testing.T) {
	m := browseModel(t, nil)

	cmd := m.exportCmd(export.FormatCSV)
	msg := cmd().(exportDoneMsg)

	require.Error(t, msg.err)
	assert.Empty(t, msg.path)

	next, _ := m.Update(msg)
	m = next.(Model[browseRecord])
	assert.True(t, strings.Contains(m.flash, "export failed"))
}
