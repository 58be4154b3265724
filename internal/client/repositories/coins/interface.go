package coins

import (
	"context"

	"github.com/dmitrijs2005/coinviewer/internal/client/models"
	"github.com/dmitrijs2005/coinviewer/internal/results"
)

type Repository interface {
	// FetchCoinsData performs one fetch and returns its single terminal result.
	// It never returns an error and never panics.
	FetchCoinsData(ctx context.Context) results.Result[models.CoinList]
}
