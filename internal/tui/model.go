// Package tui implements the interactive list browser: one generic
// bubbletea model over a listview.Controller, with live search, filter
// cycling, ellipsis paging, and export keybindings.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/redemly/redly/internal/export"
	"github.com/redemly/redly/internal/listview"
)

// RowFunc renders one record as table cells.
type RowFunc[T any] func(T) []string

// Config wires a resource into the browser.
type Config[T any] struct {
	Controller *listview.Controller[T]
	Rows       RowFunc[T]
	ExportSpec export.Spec[T]
	Title      string
	ExportDir  string
	Columns    []string
	Statuses   []string
}

// Model is the bubbletea model for one resource browser.
type Model[T any] struct {
	flash     string
	cfg       Config[T]
	search    textinput.Model
	keys      KeyMap
	ranges    []listview.DateRange
	statusIdx int
	rangeIdx  int
	width     int
	searching bool
	loading   bool
}

// NewModel creates a browser over the given resource config.
func NewModel[T any](cfg Config[T]) Model[T] {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64
	search.Width = 32

	return Model[T]{
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		search: search,
		ranges: []listview.DateRange{
			listview.RangeAll,
			listview.RangeToday,
			listview.RangeThisWeek,
			listview.RangeLastWeek,
			listview.RangeThisMonth,
			listview.RangeLastMonth,
			listview.RangeThisYear,
		},
	}
}

// Init triggers the initial record load.
func (m Model[T]) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model[T]) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return recordsLoadedMsg{err: m.cfg.Controller.Load(ctx)}
	}
}

func (m Model[T]) exportCmd(format export.Format) tea.Cmd {
	return func() tea.Msg {
		filtered := m.cfg.Controller.Filtered()
		name := fmt.Sprintf("%s-%s%s", m.cfg.Title, time.Now().Format("20060102-150405"), format.Ext())
		path := filepath.Join(m.cfg.ExportDir, name)
		if err := export.SaveFile(path, format, m.cfg.Title, filtered, m.cfg.ExportSpec); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

// Update handles input and async results.
func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case recordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.flash = "load failed: " + msg.err.Error()
		} else {
			m.flash = ""
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.flash = "export failed: " + msg.err.Error()
		} else {
			m.flash = "exported " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model[T]) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// Every keystroke re-filters and resets to page 1.
	m.cfg.Controller.SetSearch(m.search.Value())
	return m, cmd
}

func (m Model[T]) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextPage):
		m.cfg.Controller.NextPage()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.cfg.Controller.PrevPage()
		return m, nil

	case key.Matches(msg, m.keys.FirstPage):
		m.cfg.Controller.GoToPage(1)
		return m, nil

	case key.Matches(msg, m.keys.LastPage):
		m.cfg.Controller.GoToPage(m.cfg.Controller.View().PageCount)
		return m, nil

	case key.Matches(msg, m.keys.CycleStatus):
		if len(m.cfg.Statuses) > 0 {
			m.statusIdx = (m.statusIdx + 1) % (len(m.cfg.Statuses) + 1)
			m.cfg.Controller.SetField("status", m.statusValue())
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleRange):
		m.rangeIdx = (m.rangeIdx + 1) % len(m.ranges)
		m.cfg.Controller.SetRange(m.ranges[m.rangeIdx])
		return m, nil

	case key.Matches(msg, m.keys.ClearFilter):
		m.statusIdx = 0
		m.rangeIdx = 0
		m.search.SetValue("")
		m.cfg.Controller.ResetFilters()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.ExportCSV):
		return m, m.exportCmd(export.FormatCSV)

	case key.Matches(msg, m.keys.ExportXLSX):
		return m, m.exportCmd(export.FormatXLSX)
	}
	return m, nil
}

func (m Model[T]) statusValue() string {
	if m.statusIdx == 0 {
		return listview.All
	}
	return m.cfg.Statuses[m.statusIdx-1]
}

func (m Model[T]) rangeValue() listview.DateRange {
	return m.ranges[m.rangeIdx]
}
