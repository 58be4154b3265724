package cli

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/coinviewer/internal/client/models"
	"github.com/dmitrijs2005/coinviewer/internal/results"
)

// captureOutput redirects printlnFn into the returned slice for the duration
// of the test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var out []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &out
}

type fakeCoins struct {
	result results.Result[models.CoinList]
	calls  atomic.Int32
}

func (f *fakeCoins) FetchCoinsData(ctx context.Context) results.Result[models.CoinList] {
	f.calls.Add(1)
	return f.result
}

type fakeDetails struct {
	results map[string]results.Result[models.CoinDetail]
	calls   atomic.Int32
}

func (f *fakeDetails) FetchCoinDetails(ctx context.Context, coinID string) results.Result[models.CoinDetail] {
	f.calls.Add(1)
	if r, ok := f.results[coinID]; ok {
		return r
	}
	return results.Failed[models.CoinDetail]()
}
