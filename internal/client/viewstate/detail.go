package viewstate

import (
	"context"

	"github.com/dmitrijs2005/coinviewer/internal/client/models"
	"github.com/dmitrijs2005/coinviewer/internal/client/repositories/details"
	"github.com/dmitrijs2005/coinviewer/internal/logging"
	"github.com/dmitrijs2005/coinviewer/internal/results"
)

// CoinDetailHolder is the state behind the coin detail screen. Nothing is
// fetched until FetchCoinDetails is called.
type CoinDetailHolder struct {
	*holder[models.CoinDetail]
	repo details.Repository
}

func NewCoinDetailHolder(ctx context.Context, repo details.Repository, l logging.Logger) *CoinDetailHolder {
	if l == nil {
		l = logging.Nop()
	}
	return &CoinDetailHolder{
		holder: newHolder(ctx, models.NewCoinDetail(), l.With("holder", "coin_detail")),
		repo:   repo,
	}
}

// FetchCoinDetails starts a fetch for coinID. Calls may repeat with the same
// or another id; earlier fetches are not cancelled.
func (h *CoinDetailHolder) FetchCoinDetails(coinID string) {
	h.start(true, func(ctx context.Context) results.Result[models.CoinDetail] {
		return h.repo.FetchCoinDetails(ctx, coinID)
	})
}
