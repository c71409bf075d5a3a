package client

import (
	"context"
	"sync"
	"time"

	"github.com/FarazAhsan11/candidate-management/internal/domain"
)

// DefaultSearchDebounce is how long the controller waits after the last
// keystroke before issuing a search request.
const DefaultSearchDebounce = 500 * time.Millisecond

// Lister is the one call the controller needs from the API client.
type Lister interface {
	List(ctx context.Context, q domain.ListQuery) (*domain.ListResult, error)
}

// QueryController owns the listing's query state and fetch lifecycle the way
// the dashboard does: search input is debounced, every filter change resets
// to page one, and responses that arrive after a newer request has been
// issued are discarded instead of overwriting fresher data.
type QueryController struct {
	lister   Lister
	onResult func(*domain.ListResult)
	onError  func(error)

	search *debouncer

	mu    sync.Mutex
	query domain.ListQuery
	// pendingSearch holds a typed term that has not survived the debounce
	// window yet. It joins the query only when the timer fires, so a filter
	// change landing mid-window fetches with the last committed term.
	pendingSearch *string
	seq           uint64
}

// NewQueryController builds a controller delivering fetch outcomes to the
// given callbacks. Either callback may be nil.
func NewQueryController(lister Lister, onResult func(*domain.ListResult), onError func(error)) *QueryController {
	return &QueryController{
		lister:   lister,
		onResult: onResult,
		onError:  onError,
		search:   newDebouncer(DefaultSearchDebounce),
		query: domain.ListQuery{
			Position:   domain.FilterAll,
			Status:     domain.FilterAll,
			Experience: domain.FilterAll,
			SortBy:     domain.SortDateDesc,
			Page:       1,
			Limit:      domain.DefaultPageSize,
		},
	}
}

// SetSearchDebounce overrides the search delay. Zero makes searches fire
// synchronously.
func (c *QueryController) SetSearchDebounce(d time.Duration) {
	c.search.Stop()
	c.search = newDebouncer(d)
}

// Query returns a snapshot of the current query state.
func (c *QueryController) Query() domain.ListQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SetSearch records a new search term and schedules a debounced fetch. The
// term is committed to the query only when the debounce window closes.
func (c *QueryController) SetSearch(ctx context.Context, term string) {
	c.mu.Lock()
	c.pendingSearch = &term
	c.mu.Unlock()

	c.search.Do(func() { c.commitSearch(ctx) })
}

// commitSearch promotes the pending term into the query and fetches.
func (c *QueryController) commitSearch(ctx context.Context) {
	c.mu.Lock()
	if c.pendingSearch != nil {
		c.query.Search = *c.pendingSearch
		c.pendingSearch = nil
		c.query.Page = 1
	}
	c.mu.Unlock()

	c.fetch(ctx)
}

// SetPosition changes the position filter and fetches immediately.
func (c *QueryController) SetPosition(ctx context.Context, position string) {
	c.mu.Lock()
	c.query.Position = position
	c.query.Page = 1
	c.mu.Unlock()

	c.fetch(ctx)
}

// SetStatus changes the status filter and fetches immediately.
func (c *QueryController) SetStatus(ctx context.Context, status string) {
	c.mu.Lock()
	c.query.Status = status
	c.query.Page = 1
	c.mu.Unlock()

	c.fetch(ctx)
}

// SetExperience changes the experience bucket and fetches immediately.
func (c *QueryController) SetExperience(ctx context.Context, experience string) {
	c.mu.Lock()
	c.query.Experience = experience
	c.query.Page = 1
	c.mu.Unlock()

	c.fetch(ctx)
}

// SetSortBy changes the sort order and fetches immediately.
func (c *QueryController) SetSortBy(ctx context.Context, sortBy string) {
	c.mu.Lock()
	c.query.SortBy = sortBy
	c.query.Page = 1
	c.mu.Unlock()

	c.fetch(ctx)
}

// SetPage moves to another page of the current selection. Unlike the other
// setters it does not reset pagination.
func (c *QueryController) SetPage(ctx context.Context, page int) {
	c.mu.Lock()
	c.query.Page = page
	c.mu.Unlock()

	c.fetch(ctx)
}

// Refresh re-runs the current query, e.g. after a create or delete.
func (c *QueryController) Refresh(ctx context.Context) {
	c.fetch(ctx)
}

// Close cancels any pending debounced fetch.
func (c *QueryController) Close() {
	c.search.Stop()
}

// fetch issues the request asynchronously. Each fetch takes a fresh sequence
// number; a response is delivered only while its number is still current, so
// a slow early request can never clobber the result of a later one.
func (c *QueryController) fetch(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	q := c.query
	c.mu.Unlock()

	go func() {
		result, err := c.lister.List(ctx, q)

		c.mu.Lock()
		stale := seq != c.seq
		c.mu.Unlock()
		if stale {
			return
		}

		if err != nil {
			if c.onError != nil {
				c.onError(err)
			}
			return
		}
		if c.onResult != nil {
			c.onResult(result)
		}
	}()
}
