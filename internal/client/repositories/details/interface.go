package details

import (
	"context"

	"github.com/dmitrijs2005/coinviewer/internal/client/models"
	"github.com/dmitrijs2005/coinviewer/internal/results"
)

type Repository interface {
	// FetchCoinDetails performs one fetch for coinID and returns its single
	// terminal result. It never returns an error and never panics.
	FetchCoinDetails(ctx context.Context, coinID string) results.Result[models.CoinDetail]
}
