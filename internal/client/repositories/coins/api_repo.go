package coins

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coinviewer/internal/client/client"
	"github.com/dmitrijs2005/coinviewer/internal/client/models"
	"github.com/dmitrijs2005/coinviewer/internal/common"
	"github.com/dmitrijs2005/coinviewer/internal/logging"
	"github.com/dmitrijs2005/coinviewer/internal/results"
	"github.com/google/uuid"
)

type APIRepository struct {
	client client.Client
	logger logging.Logger
}

// NewAPIRepository returns a Repository backed by c. A nil logger discards output.
func NewAPIRepository(c client.Client, l logging.Logger) *APIRepository {
	if l == nil {
		l = logging.Nop()
	}
	return &APIRepository{client: c, logger: l.With("repo", "coins")}
}

func (r *APIRepository) FetchCoinsData(ctx context.Context) (res results.Result[models.CoinList]) {
	log := r.logger.With("fetch_id", uuid.NewString())

	defer func() {
		if p := recover(); p != nil {
			log.Error(ctx, "coin list fetch panicked", "panic", p)
			res = results.Failed[models.CoinList]()
		}
	}()

	resp, err := r.client.FetchCoinList(ctx)
	if err != nil {
		log.Warn(ctx, "coin list fetch failed", "error", fmt.Errorf("%w: %w", common.ErrOperationFailed, err))
		return results.Failed[models.CoinList]()
	}

	switch {
	case resp == nil:
		log.Warn(ctx, "coin list fetch returned no response")
	case !resp.IsSuccessful():
		log.Warn(ctx, "coin list fetch returned error status", "status", resp.StatusCode)
	case resp.Body == nil:
		log.Warn(ctx, "coin list response has no body", "status", resp.StatusCode)
	case len(*resp.Body) == 0:
		log.Warn(ctx, "coin list response is empty", "status", resp.StatusCode)
	default:
		log.Debug(ctx, "coin list fetched", "count", len(*resp.Body))
		return results.NewSuccess(*resp.Body)
	}

	return results.Failed[models.CoinList]()
}
