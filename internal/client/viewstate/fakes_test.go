package viewstate

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/coinviewer/internal/client/models"
	"github.com/dmitrijs2005/coinviewer/internal/results"
)

// fakeCall is one scripted repository response. When gate is non-nil the
// call blocks until the gate is closed or the context is done.
type fakeCall[T any] struct {
	result results.Result[T]
	panic  any
	gate   chan struct{}
}

type fakeScript[T any] struct {
	mu    sync.Mutex
	calls []fakeCall[T]
	ids   []string
	n     atomic.Int32
}

func (s *fakeScript[T]) next(ctx context.Context, id string) results.Result[T] {
	s.mu.Lock()
	i := int(s.n.Add(1)) - 1
	s.ids = append(s.ids, id)
	c := fakeCall[T]{result: results.Failed[T]()}
	if i < len(s.calls) {
		c = s.calls[i]
	}
	s.mu.Unlock()

	if c.gate != nil {
		select {
		case <-c.gate:
		case <-ctx.Done():
		}
	}
	if c.panic != nil {
		panic(c.panic)
	}
	return c.result
}

func (s *fakeScript[T]) count() int {
	return int(s.n.Load())
}

func (s *fakeScript[T]) requestedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

type fakeCoinsRepo struct {
	fakeScript[models.CoinList]
}

func (f *fakeCoinsRepo) FetchCoinsData(ctx context.Context) results.Result[models.CoinList] {
	return f.next(ctx, "")
}

type fakeDetailsRepo struct {
	fakeScript[models.CoinDetail]
}

func (f *fakeDetailsRepo) FetchCoinDetails(ctx context.Context, coinID string) results.Result[models.CoinDetail] {
	return f.next(ctx, coinID)
}
