package listview

// DefaultPageSize matches the row count used across the admin tables.
const DefaultPageSize = 10

// PageState holds the current page and page size for a list view.
type PageState struct {
	Current int
	Size    int
}

// Page is one slice of the filtered list, with its paging metadata.
type Page[T any] struct {
	Items   []T
	Current int
	Count   int
	Total   int
}

// PageCount returns the number of pages needed for total records. Never
// less than 1: an empty list still has one (empty) page.
func PageCount(total, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	count := (total + size - 1) / size
	if count < 1 {
		return 1
	}
	return count
}

// ClampPage snaps page into [1, count]. Out-of-range navigation is a
// no-op at the boundary, never an error.
func ClampPage(page, count int) int {
	if page < 1 {
		return 1
	}
	if page > count {
		return count
	}
	return page
}

// Paginate slices the filtered records for the requested page. The page is
// clamped first, so callers always receive a valid (possibly empty) page.
func Paginate[T any](records []T, state PageState) Page[T] {
	size := state.Size
	if size < 1 {
		size = DefaultPageSize
	}
	count := PageCount(len(records), size)
	current := ClampPage(state.Current, count)

	start := (current - 1) * size
	end := start + size
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}

	return Page[T]{
		Items:   records[start:end],
		Current: current,
		Count:   count,
		Total:   len(records),
	}
}

// WindowItem is one entry in the paging control: a page number or a gap.
type WindowItem struct {
	Page int
	Gap  bool
}

// Window produces the ellipsis-collapsed page-number sequence for paging
// controls. The first and last page are always present, plus one neighbor
// on each side of current. A gap of exactly one page is shown as that page;
// anything wider collapses to a single gap marker.
func Window(current, count int) []WindowItem {
	if count < 1 {
		count = 1
	}
	current = ClampPage(current, count)

	show := func(p int) bool {
		if p == 1 || p == count {
			return true
		}
		return p >= current-1 && p <= current+1
	}

	var items []WindowItem
	last := 0
	for p := 1; p <= count; p++ {
		if !show(p) {
			continue
		}
		switch gap := p - last; {
		case last > 0 && gap == 2:
			items = append(items, WindowItem{Page: p - 1})
		case last > 0 && gap > 2:
			items = append(items, WindowItem{Gap: true})
		}
		items = append(items, WindowItem{Page: p})
		last = p
	}
	return items
}
