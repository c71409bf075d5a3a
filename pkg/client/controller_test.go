package client_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/FarazAhsan11/candidate-management/internal/domain"
	"github.com/FarazAhsan11/candidate-management/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLister records every query it receives and can hold individual calls
// open to simulate slow responses.
type fakeLister struct {
	mu      sync.Mutex
	queries []domain.ListQuery
	respond func(q domain.ListQuery) (*domain.ListResult, error)
}

func (f *fakeLister) List(ctx context.Context, q domain.ListQuery) (*domain.ListResult, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	respond := f.respond
	f.mu.Unlock()

	if respond != nil {
		return respond(q)
	}
	return &domain.ListResult{Pagination: domain.Pagination{TotalPages: 1, CurrentPage: q.Page}}, nil
}

func (f *fakeLister) calls() []domain.ListQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.ListQuery, len(f.queries))
	copy(out, f.queries)
	return out
}

// resultSink collects delivered results so tests can wait on them.
type resultSink struct {
	ch chan *domain.ListResult
}

func newResultSink() *resultSink {
	return &resultSink{ch: make(chan *domain.ListResult, 16)}
}

func (s *resultSink) deliver(r *domain.ListResult) {
	s.ch <- r
}

func (s *resultSink) wait(t *testing.T) *domain.ListResult {
	t.Helper()
	select {
	case r := <-s.ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
		return nil
	}
}

func (s *resultSink) assertNoMore(t *testing.T) {
	t.Helper()
	select {
	case r := <-s.ch:
		t.Fatalf("unexpected extra result: %+v", r)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestQueryControllerDefaults(t *testing.T) {
	ctrl := client.NewQueryController(&fakeLister{}, nil, nil)
	defer ctrl.Close()

	q := ctrl.Query()
	assert.Equal(t, domain.FilterAll, q.Position)
	assert.Equal(t, domain.FilterAll, q.Status)
	assert.Equal(t, domain.FilterAll, q.Experience)
	assert.Equal(t, domain.SortDateDesc, q.SortBy)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, domain.DefaultPageSize, q.Limit)
}

func TestQueryControllerDebounce(t *testing.T) {
	t.Run("Should coalesce a typing burst into one request", func(t *testing.T) {
		lister := &fakeLister{}
		sink := newResultSink()
		ctrl := client.NewQueryController(lister, sink.deliver, nil)
		defer ctrl.Close()
		ctrl.SetSearchDebounce(50 * time.Millisecond)

		ctx := context.Background()
		ctrl.SetSearch(ctx, "a")
		ctrl.SetSearch(ctx, "ad")
		ctrl.SetSearch(ctx, "ada")

		sink.wait(t)
		sink.assertNoMore(t)

		calls := lister.calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "ada", calls[0].Search)
	})

	t.Run("Should keep a pending term out of a filter fetch", func(t *testing.T) {
		lister := &fakeLister{}
		sink := newResultSink()
		ctrl := client.NewQueryController(lister, sink.deliver, nil)
		defer ctrl.Close()
		ctrl.SetSearchDebounce(150 * time.Millisecond)

		ctx := context.Background()
		ctrl.SetSearch(ctx, "pend")
		ctrl.SetStatus(ctx, "Screening")
		sink.wait(t)

		// The filter change fires inside the debounce window and must carry
		// the last committed term, not the one still pending.
		calls := lister.calls()
		require.Len(t, calls, 1)
		assert.Empty(t, calls[0].Search)
		assert.Equal(t, "Screening", calls[0].Status)
		assert.Empty(t, ctrl.Query().Search)

		// Once the window closes the term commits and fetches.
		sink.wait(t)
		calls = lister.calls()
		require.Len(t, calls, 2)
		assert.Equal(t, "pend", calls[1].Search)
		assert.Equal(t, "Screening", calls[1].Status)
		assert.Equal(t, "pend", ctrl.Query().Search)
	})

	t.Run("Should fetch immediately with a zero debounce", func(t *testing.T) {
		lister := &fakeLister{}
		sink := newResultSink()
		ctrl := client.NewQueryController(lister, sink.deliver, nil)
		defer ctrl.Close()
		ctrl.SetSearchDebounce(0)

		ctrl.SetSearch(context.Background(), "ada")
		sink.wait(t)
		require.Len(t, lister.calls(), 1)
	})
}

func TestQueryControllerPageReset(t *testing.T) {
	lister := &fakeLister{}
	sink := newResultSink()
	ctrl := client.NewQueryController(lister, sink.deliver, nil)
	defer ctrl.Close()
	ctrl.SetSearchDebounce(0)

	ctx := context.Background()

	ctrl.SetPage(ctx, 3)
	sink.wait(t)
	assert.Equal(t, 3, ctrl.Query().Page)

	t.Run("Should reset the page on a filter change", func(t *testing.T) {
		ctrl.SetStatus(ctx, "Screening")
		sink.wait(t)
		q := ctrl.Query()
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, "Screening", q.Status)
	})

	t.Run("Should reset the page on a sort change", func(t *testing.T) {
		ctrl.SetPage(ctx, 2)
		sink.wait(t)
		ctrl.SetSortBy(ctx, domain.SortNameAsc)
		sink.wait(t)
		assert.Equal(t, 1, ctrl.Query().Page)
	})

	t.Run("Should keep an explicit page change", func(t *testing.T) {
		ctrl.SetPage(ctx, 4)
		sink.wait(t)
		assert.Equal(t, 4, ctrl.Query().Page)
	})
}

func TestQueryControllerStaleResponses(t *testing.T) {
	t.Run("Should discard a response that lost the race", func(t *testing.T) {
		firstStarted := make(chan struct{})
		release := make(chan struct{})

		lister := &fakeLister{}
		lister.respond = func(q domain.ListQuery) (*domain.ListResult, error) {
			if q.Search == "slow" {
				close(firstStarted)
				<-release
			}
			return &domain.ListResult{
				Candidates: []domain.Candidate{{Name: q.Search}},
				Pagination: domain.Pagination{TotalPages: 1, CurrentPage: 1},
			}, nil
		}

		sink := newResultSink()
		ctrl := client.NewQueryController(lister, sink.deliver, nil)
		defer ctrl.Close()
		ctrl.SetSearchDebounce(0)

		ctx := context.Background()
		ctrl.SetSearch(ctx, "slow")
		<-firstStarted
		ctrl.SetSearch(ctx, "fast")

		result := sink.wait(t)
		require.Len(t, result.Candidates, 1)
		assert.Equal(t, "fast", result.Candidates[0].Name)

		// The early request finishes last and must be dropped.
		close(release)
		sink.assertNoMore(t)
	})

	t.Run("Should suppress the error of a superseded request", func(t *testing.T) {
		firstStarted := make(chan struct{})
		release := make(chan struct{})

		lister := &fakeLister{}
		lister.respond = func(q domain.ListQuery) (*domain.ListResult, error) {
			if q.Search == "failing" {
				close(firstStarted)
				<-release
				return nil, assert.AnError
			}
			return &domain.ListResult{}, nil
		}

		errs := make(chan error, 1)
		sink := newResultSink()
		ctrl := client.NewQueryController(lister, sink.deliver, func(err error) { errs <- err })
		defer ctrl.Close()
		ctrl.SetSearchDebounce(0)

		ctx := context.Background()
		ctrl.SetSearch(ctx, "failing")
		<-firstStarted
		ctrl.SetSearch(ctx, "ok")
		sink.wait(t)

		close(release)
		select {
		case err := <-errs:
			t.Fatalf("stale error delivered: %v", err)
		case <-time.After(100 * time.Millisecond):
		}
	})
}

func TestQueryControllerRefresh(t *testing.T) {
	lister := &fakeLister{}
	sink := newResultSink()
	ctrl := client.NewQueryController(lister, sink.deliver, nil)
	defer ctrl.Close()
	ctrl.SetSearchDebounce(0)

	ctx := context.Background()
	ctrl.SetPosition(ctx, "QA")
	sink.wait(t)
	ctrl.Refresh(ctx)
	sink.wait(t)

	calls := lister.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0], calls[1], "refresh re-runs the same query")
}
