// Package listview implements the shared list pipeline behind every admin
// list surface: a record store fed from the Redemly API, a pure filter
// chain, offset pagination with an ellipsis window, and the reactive
// controller that ties them together.
package listview

import (
	"strings"
	"time"
)

// All is the sentinel value meaning a categorical filter is inactive.
const All = "all"

// Accessor extracts a string field from a record.
type Accessor[T any] func(T) string

// TimeAccessor extracts the record's timestamp. Return the zero time for
// records with no usable date; they are excluded from any active window.
type TimeAccessor[T any] func(T) time.Time

// Schema describes which fields of a record participate in filtering.
type Schema[T any] struct {
	// Fields maps categorical filter keys (status, category, method) to
	// the accessor for the matching record field.
	Fields map[string]Accessor[T]
	// SearchFields are matched by the free-text search, OR'd together.
	SearchFields []Accessor[T]
	// DateField is used by the date-range filter. Nil disables it.
	DateField TimeAccessor[T]
}

// DateRange names a calendar window relative to "now".
type DateRange string

const (
	// RangeAll disables the date filter.
	RangeAll DateRange = "all"
	// RangeToday covers the current calendar day.
	RangeToday DateRange = "today"
	// RangeThisWeek covers the current calendar week, starting Sunday.
	RangeThisWeek DateRange = "thisWeek"
	// RangeLastWeek covers the previous calendar week.
	RangeLastWeek DateRange = "lastWeek"
	// RangeThisMonth covers the current calendar month.
	RangeThisMonth DateRange = "thisMonth"
	// RangeLastMonth covers the previous calendar month.
	RangeLastMonth DateRange = "lastMonth"
	// RangeThisYear covers the current calendar year.
	RangeThisYear DateRange = "thisYear"
	// RangeCustom uses the explicit From/To dates on the FilterState.
	RangeCustom DateRange = "custom"
)

// ParseDateRange maps user input to a DateRange, accepting both the wire
// names and flag-friendly kebab-case spellings.
func ParseDateRange(s string) (DateRange, bool) {
	switch s {
	case "", "all":
		return RangeAll, true
	case "today":
		return RangeToday, true
	case "thisWeek", "this-week":
		return RangeThisWeek, true
	case "lastWeek", "last-week":
		return RangeLastWeek, true
	case "thisMonth", "this-month":
		return RangeThisMonth, true
	case "lastMonth", "last-month":
		return RangeLastMonth, true
	case "thisYear", "this-year":
		return RangeThisYear, true
	}
	return RangeAll, false
}

// FilterState holds the active filter selections for one list view.
type FilterState struct {
	From   time.Time
	To     time.Time
	Fields map[string]string
	Search string
	Range  DateRange
}

// NewFilterState returns a FilterState with every filter inactive.
func NewFilterState() FilterState {
	return FilterState{
		Fields: make(map[string]string),
		Range:  RangeAll,
	}
}

// Active reports whether any filter would exclude records.
func (s FilterState) Active() bool {
	if s.Search != "" || s.Range != RangeAll {
		return true
	}
	for _, v := range s.Fields {
		if v != "" && v != All {
			return true
		}
	}
	return false
}

// Apply runs the filter chain over records: free-text search, then
// categorical equality, then the date window. Predicates are ANDed and the
// result preserves input order. Pure: the same (records, state, now) always
// yields the same output.
func Apply[T any](records []T, schema Schema[T], state FilterState, now time.Time) []T {
	query := strings.ToLower(strings.TrimSpace(state.Search))
	from, to, dateActive := state.windowBounds(now)

	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if query != "" && !matchesSearch(record, schema.SearchFields, query) {
			continue
		}
		if !matchesFields(record, schema.Fields, state.Fields) {
			continue
		}
		if dateActive {
			if schema.DateField == nil {
				continue
			}
			ts := schema.DateField(record)
			if ts.IsZero() || ts.Before(from) || !ts.Before(to) {
				continue
			}
		}
		filtered = append(filtered, record)
	}
	return filtered
}

func matchesSearch[T any](record T, fields []Accessor[T], query string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(record)), query) {
			return true
		}
	}
	return false
}

func matchesFields[T any](record T, accessors map[string]Accessor[T], selected map[string]string) bool {
	for key, want := range selected {
		if want == "" || want == All {
			continue
		}
		accessor, ok := accessors[key]
		if !ok {
			// Unknown filter key excludes nothing.
			continue
		}
		if accessor(record) != want {
			return false
		}
	}
	return true
}

// windowBounds resolves the named window to a half-open [from, to) interval
// in now's location. Calendar boundaries, weeks starting Sunday.
func (s FilterState) windowBounds(now time.Time) (from, to time.Time, active bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch s.Range {
	case RangeAll, "":
		return time.Time{}, time.Time{}, false
	case RangeToday:
		return midnight, midnight.AddDate(0, 0, 1), true
	case RangeThisWeek:
		start := midnight.AddDate(0, 0, -int(now.Weekday()))
		return start, start.AddDate(0, 0, 7), true
	case RangeLastWeek:
		end := midnight.AddDate(0, 0, -int(now.Weekday()))
		return end.AddDate(0, 0, -7), end, true
	case RangeThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0), true
	case RangeLastMonth:
		end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return end.AddDate(0, -1, 0), end, true
	case RangeThisYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0), true
	case RangeCustom:
		if s.From.IsZero() && s.To.IsZero() {
			return time.Time{}, time.Time{}, false
		}
		from = s.From
		to = s.To
		if to.IsZero() {
			// Open-ended range.
			to = from.AddDate(100, 0, 0)
		} else {
			// To is a date, inclusive of the whole day.
			to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)
		}
		return from, to, true
	}
	return time.Time{}, time.Time{}, false
}
