package details

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
	return &APIRepository{client: c, logger: l.With("repo", "details")}
}

func (r *APIRepository) FetchCoinDetails(ctx context.Context, coinID string) (res results.Result[models.CoinDetail]) {
	log := r.logger.With("fetch_id", uuid.NewString(), "coin_id", coinID)

	defer func() {
		if p := recover(); p != nil {
			log.Error(ctx, "coin detail fetch panicked", "panic", p)
			res = results.Failed[models.CoinDetail]()
		}
	}()

	resp, err := r.client.FetchCoinDetail(ctx, coinID)
	if err != nil {
		log.Warn(ctx, "coin detail fetch failed", "error", fmt.Errorf("%w: %w", common.ErrOperationFailed, err))
		return results.Failed[models.CoinDetail]()
	}

	switch {
	case resp == nil:
		log.Warn(ctx, "coin detail fetch returned no response")
	case !resp.IsSuccessful():
		log.Warn(ctx, "coin detail fetch returned error status", "status", resp.StatusCode)
	case resp.Body == nil:
		log.Warn(ctx, "coin detail response has no body", "status", resp.StatusCode)
	default:
		log.Debug(ctx, "coin detail fetched")
		return results.NewSuccess(*resp.Body)
	}

	return results.Failed[models.CoinDetail]()
}
