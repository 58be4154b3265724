package viewstate

import (
	"context"

	"github.com/dmitrijs2005/coinviewer/internal/client/models"
	"github.com/dmitrijs2005/coinviewer/internal/client/repositories/coins"
	"github.com/dmitrijs2005/coinviewer/internal/logging"
	"github.com/dmitrijs2005/coinviewer/internal/results"
)

// CoinListHolder is the state behind the coin list screen. It starts loading
// as soon as it is created.
type CoinListHolder struct {
	*holder[models.CoinList]
	repo coins.Repository
}

// NewCoinListHolder creates the holder and immediately starts the first
// fetch. ctx is the screen's scope; cancelling it has the same effect as Close.
func NewCoinListHolder(ctx context.Context, repo coins.Repository, l logging.Logger) *CoinListHolder {
	if l == nil {
		l = logging.Nop()
	}
	h := &CoinListHolder{
		holder: newHolder(ctx, models.CoinList{}, l.With("holder", "coin_list")),
		repo:   repo,
	}
	h.fetch(false)
	return h
}

// Refresh marks the screen as refreshing and starts a new fetch, regardless
// of any fetch already in flight.
func (h *CoinListHolder) Refresh() {
	h.fetch(true)
}

func (h *CoinListHolder) fetch(markRefreshing bool) {
	h.start(markRefreshing, func(ctx context.Context) results.Result[models.CoinList] {
		return h.repo.FetchCoinsData(ctx)
	})
}
