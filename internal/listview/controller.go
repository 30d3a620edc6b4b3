package listview

import (
	"context"
	"sync"
	"time"
)

// View is the render-ready output of one pipeline recomputation.
type View[T any] struct {
	Err           error
	Items         []T
	Window        []WindowItem
	CurrentPage   int
	PageCount     int
	TotalRecords  int
	FilteredCount int
}

// Controller binds a Store, a filter Schema, and page state into one list
// pipeline. Any filter change resets the current page to 1; bare page
// navigation clamps into range. All recomputation is pull-based: View
// re-derives filter then pagination from current state every call.
type Controller[T any] struct {
	now    func() time.Time
	store  *Store[T]
	schema Schema[T]
	filter FilterState
	page   PageState
	mu     sync.Mutex
}

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithClock overrides the wall clock used by the date-range filter.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(c *Controller[T]) {
		c.now = now
	}
}

// WithPageSize overrides DefaultPageSize.
func WithPageSize[T any](size int) Option[T] {
	return func(c *Controller[T]) {
		if size > 0 {
			c.page.Size = size
		}
	}
}

// NewController creates a pipeline over the given loader and schema.
func NewController[T any](loader Loader[T], schema Schema[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		store:  NewStore(loader),
		schema: schema,
		filter: NewFilterState(),
		page:   PageState{Current: 1, Size: DefaultPageSize},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load refreshes the record store. See Store.Load for failure semantics.
func (c *Controller[T]) Load(ctx context.Context) error {
	return c.store.Load(ctx)
}

// Replace installs records directly into the store.
func (c *Controller[T]) Replace(records []T) {
	c.store.Replace(records)
}

// SetSearch updates the free-text query and resets to page 1.
func (c *Controller[T]) SetSearch(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Search = query
	c.page.Current = 1
}

// SetField updates a categorical filter and resets to page 1. The sentinel
// "all" (or an empty value) deactivates the filter.
func (c *Controller[T]) SetField(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filter.Fields == nil {
		c.filter.Fields = make(map[string]string)
	}
	c.filter.Fields[key] = value
	c.page.Current = 1
}

// SetRange selects a named date window and resets to page 1.
func (c *Controller[T]) SetRange(r DateRange) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Range = r
	c.page.Current = 1
}

// SetCustomRange selects an explicit date window and resets to page 1.
func (c *Controller[T]) SetCustomRange(from, to time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Range = RangeCustom
	c.filter.From = from
	c.filter.To = to
	c.page.Current = 1
}

// ResetFilters clears every filter and returns to page 1.
func (c *Controller[T]) ResetFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = NewFilterState()
	c.page.Current = 1
}

// GoToPage navigates to page p, clamped to the filtered page count.
func (c *Controller[T]) GoToPage(p int) {
	filtered := c.Filtered()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.Current = ClampPage(p, PageCount(len(filtered), c.page.Size))
}

// NextPage advances one page, clamped.
func (c *Controller[T]) NextPage() {
	c.GoToPage(c.CurrentPage() + 1)
}

// PrevPage steps back one page, clamped.
func (c *Controller[T]) PrevPage() {
	c.GoToPage(c.CurrentPage() - 1)
}

// CurrentPage returns the stored page number.
func (c *Controller[T]) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page.Current
}

// FilterState returns a copy of the active filter selections.
func (c *Controller[T]) FilterState() FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := c.filter
	state.Fields = make(map[string]string, len(c.filter.Fields))
	for k, v := range c.filter.Fields {
		state.Fields[k] = v
	}
	return state
}

// Filtered returns the current filtered, unpaginated list. This is what
// the exporter reads, so exports always see the live filter output.
func (c *Controller[T]) Filtered() []T {
	c.mu.Lock()
	schema, state, now := c.schema, c.filter, c.now()
	c.mu.Unlock()
	return Apply(c.store.Records(), schema, state, now)
}

// View recomputes the full pipeline: filter, then paginate, then the
// ellipsis window for the paging control.
func (c *Controller[T]) View() View[T] {
	filtered := c.Filtered()

	c.mu.Lock()
	page := Paginate(filtered, c.page)
	c.mu.Unlock()

	return View[T]{
		Items:         page.Items,
		CurrentPage:   page.Current,
		PageCount:     page.Count,
		Window:        Window(page.Current, page.Count),
		TotalRecords:  len(c.store.Records()),
		FilteredCount: len(filtered),
		Err:           c.store.Err(),
	}
}
