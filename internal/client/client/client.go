package client

import (
	"context"

	"github.com/dmitrijs2005/coinviewer/internal/client/models"
)

// Response is the outcome of a call that reached the server.
//
// Body is nil when the status is not 2xx, or when a 2xx response carried no
// body (empty or JSON null).
type Response[T any] struct {
	StatusCode int
	Body       *T
}

// IsSuccessful reports whether the status code is in the 2xx range.
func (r *Response[T]) IsSuccessful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Client interface {
	FetchCoinList(ctx context.Context) (*Response[models.CoinList], error)
	FetchCoinDetail(ctx context.Context, coinID string) (*Response[models.CoinDetail], error)
}
