package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Date     time.Time
	Name     string
	Email    string
	Status   string
	Category string
}

func testSchema() Schema[testRecord] {
	return Schema[testRecord]{
		SearchFields: []Accessor[testRecord]{
			func(r testRecord) string { return r.Name },
			func(r testRecord) string { return r.Email },
		},
		Fields: map[string]Accessor[testRecord]{
			"status":   func(r testRecord) string { return r.Status },
			"category": func(r testRecord) string { return r.Category },
		},
		DateField: func(r testRecord) time.Time { return r.Date },
	}
}

func TestApply_SearchMatchesAnyField(t *testing.T) {
	records := []testRecord{
		{Name: "Acme Foods"},
		{Name: "Best Buy"},
	}

	got := Apply(records, testSchema(), FilterState{Search: "foo"}, time.Now())

	require.Len(t, got, 1)
	assert.Equal(t, "Acme Foods", got[0].Name)
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	records := []testRecord{
		{Name: "Acme Foods", Email: "ops@acme.test"},
		{Name: "Best Buy", Email: "contact@bestbuy.test"},
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "upper case query", query: "ACME", want: 1},
		{name: "matches against email too", query: "bestbuy.TEST", want: 1},
		{name: "empty query matches everything", query: "", want: 2},
		{name: "whitespace only matches everything", query: "   ", want: 2},
		{name: "no match", query: "zzz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(records, testSchema(), FilterState{Search: tt.query}, time.Now())
			assert.Len(t, got, tt.want)
		})
	}
}

func TestApply_StatusAllPassesThrough(t *testing.T) {
	records := []testRecord{
		{Name: "a", Status: "active"},
		{Name: "b", Status: "paused"},
		{Name: "c", Status: ""},
	}
	state := NewFilterState()
	state.Fields["status"] = All

	got := Apply(records, testSchema(), state, time.Now())

	assert.Len(t, got, 3)
}

func TestApply_CategoricalExactMatch(t *testing.T) {
	records := []testRecord{
		{Name: "a", Status: "active", Category: "food"},
		{Name: "b", Status: "active", Category: "retail"},
		{Name: "c", Status: "paused", Category: "food"},
	}

	state := NewFilterState()
	state.Fields["status"] = "active"
	state.Fields["category"] = "food"

	got := Apply(records, testSchema(), state, time.Now())

	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Name)
}

func TestApply_CategoricalIsCaseSensitive(t *testing.T) {
	records := []testRecord{{Name: "a", Status: "Active"}}

	state := NewFilterState()
	state.Fields["status"] = "active"

	assert.Empty(t, Apply(records, testSchema(), state, time.Now()))
}

func TestApply_Idempotent(t *testing.T) {
	records := []testRecord{
		{Name: "Acme Foods", Status: "active"},
		{Name: "Best Buy", Status: "paused"},
		{Name: "Acme Retail", Status: "active"},
	}
	state := NewFilterState()
	state.Search = "acme"
	state.Fields["status"] = "active"
	now := time.Date(2025, 5, 15, 12, 0, 0, 0, time.UTC)

	once := Apply(records, testSchema(), state, now)
	twice := Apply(once, testSchema(), state, now)

	assert.Equal(t, once, twice)
}

func TestApply_DateWindows(t *testing.T) {
	// Thursday.
	now := time.Date(2025, 5, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		window   DateRange
		included bool
	}{
		{
			name:     "monday of this week is in thisWeek",
			date:     time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC),
			window:   RangeThisWeek,
			included: true,
		},
		{
			name:     "monday of this week is not in lastWeek",
			date:     time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC),
			window:   RangeLastWeek,
			included: false,
		},
		{
			name:     "sunday starts the week",
			date:     time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC),
			window:   RangeThisWeek,
			included: true,
		},
		{
			name:     "previous saturday is lastWeek",
			date:     time.Date(2025, 5, 10, 23, 0, 0, 0, time.UTC),
			window:   RangeLastWeek,
			included: true,
		},
		{
			name:     "same day is today",
			date:     time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
			window:   RangeToday,
			included: true,
		},
		{
			name:     "yesterday is not today",
			date:     time.Date(2025, 5, 14, 23, 59, 0, 0, time.UTC),
			window:   RangeToday,
			included: false,
		},
		{
			name:     "first of month is thisMonth",
			date:     time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			window:   RangeThisMonth,
			included: true,
		},
		{
			name:     "april is lastMonth",
			date:     time.Date(2025, 4, 30, 12, 0, 0, 0, time.UTC),
			window:   RangeLastMonth,
			included: true,
		},
		{
			name:     "january is thisYear",
			date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			window:   RangeThisYear,
			included: true,
		},
		{
			name:     "last december is not thisYear",
			date:     time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC),
			window:   RangeThisYear,
			included: false,
		},
		{
			name:     "missing date is excluded from active windows",
			date:     time.Time{},
			window:   RangeThisYear,
			included: false,
		},
		{
			name:     "missing date passes when window is all",
			date:     time.Time{},
			window:   RangeAll,
			included: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []testRecord{{Name: "r", Date: tt.date}}
			state := NewFilterState()
			state.Range = tt.window

			got := Apply(records, testSchema(), state, now)

			if tt.included {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestApply_CustomRangeInclusiveOfEndDay(t *testing.T) {
	records := []testRecord{
		{Name: "before", Date: time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)},
		{Name: "start", Date: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "end", Date: time.Date(2025, 4, 30, 18, 0, 0, 0, time.UTC)},
		{Name: "after", Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
	}

	state := NewFilterState()
	state.Range = RangeCustom
	state.From = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	state.To = time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	got := Apply(records, testSchema(), state, time.Now())

	require.Len(t, got, 2)
	assert.Equal(t, "start", got[0].Name)
	assert.Equal(t, "end", got[1].Name)
}

func TestApply_PreservesInputOrder(t *testing.T) {
	records := []testRecord{
		{Name: "c", Status: "active"},
		{Name: "a", Status: "active"},
		{Name: "b", Status: "active"},
	}
	state := NewFilterState()
	state.Fields["status"] = "active"

	got := Apply(records, testSchema(), state, time.Now())

	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Name)
	assert.Equal(t, "a", got[1].Name)
	assert.Equal(t, "b", got[2].Name)
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		input string
		want  DateRange
		ok    bool
	}{
		{input: "all", want: RangeAll, ok: true},
		{input: "", want: RangeAll, ok: true},
		{input: "today", want: RangeToday, ok: true},
		{input: "thisWeek", want: RangeThisWeek, ok: true},
		{input: "this-week", want: RangeThisWeek, ok: true},
		{input: "last-month", want: RangeLastMonth, ok: true},
		{input: "bogus", want: RangeAll, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDateRange(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
