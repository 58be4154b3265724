package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/coinviewer/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := NewHTTPClient(ts.URL+"/v1/", "coinviewer-test", ts.Client())
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_NormalizesBaseURL(t *testing.T) {
	c, err := NewCoinPaprikaClient("https://api.coinpaprika.com/v1", "")
	require.NoError(t, err)
	assert.Equal(t, "https://api.coinpaprika.com/v1/", c.BaseURL())

	c, err = NewCoinPaprikaClient("https://api.coinpaprika.com/v1/", "")
	require.NoError(t, err)
	assert.Equal(t, "https://api.coinpaprika.com/v1/", c.BaseURL())
}

func TestNewHTTPClient_RejectsInvalidBaseURL(t *testing.T) {
	for _, u := range []string{"", "api.coinpaprika.com/v1/", "ftp://host/", "http://", "://bad"} {
		t.Run(u, func(t *testing.T) {
			_, err := NewCoinPaprikaClient(u, "")
			assert.ErrorIs(t, err, ErrInvalidURL)
		})
	}
}

func TestFetchCoinList_Success(t *testing.T) {
	var gotPath, gotUA string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"btc-bitcoin","name":"Bitcoin","symbol":"BTC","rank":1,"is_new":false,"is_active":true,"type":"coin"}]`))
	})

	resp, err := c.FetchCoinList(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/v1/coins", gotPath)
	assert.Equal(t, "coinviewer-test", gotUA)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, resp.IsSuccessful())
	require.NotNil(t, resp.Body)
	assert.Equal(t, models.CoinList{{ID: "btc-bitcoin", Name: "Bitcoin", Symbol: "BTC", Rank: 1, Type: "coin", IsActive: true}}, *resp.Body)
}

func TestFetchCoinDetail_InterpolatesID(t *testing.T) {
	var gotPath string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"eth-ethereum","name":"Ethereum","rank":2}`))
	})

	resp, err := c.FetchCoinDetail(context.Background(), "eth-ethereum")
	require.NoError(t, err)

	assert.Equal(t, "/v1/coins/eth-ethereum", gotPath)
	require.NotNil(t, resp.Body)
	assert.Equal(t, "eth-ethereum", resp.Body.ID)
	assert.Equal(t, "Ethereum", resp.Body.Name)
	assert.Equal(t, 2, resp.Body.Rank)
	assert.NotNil(t, resp.Body.Tags)
}

func TestFetch_NonSuccessStatusIsNotAnError(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"error":"id not found"}`))
			})

			resp, err := c.FetchCoinDetail(context.Background(), "btc-bitcoin")
			require.NoError(t, err)
			assert.Equal(t, status, resp.StatusCode)
			assert.False(t, resp.IsSuccessful())
			assert.Nil(t, resp.Body)
		})
	}
}

func TestFetch_AbsentBody(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "no content", status: http.StatusNoContent, body: ""},
		{name: "empty 200", status: http.StatusOK, body: ""},
		{name: "whitespace", status: http.StatusOK, body: "  \n"},
		{name: "json null", status: http.StatusOK, body: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := c.FetchCoinList(context.Background())
			require.NoError(t, err)
			assert.True(t, resp.IsSuccessful())
			assert.Nil(t, resp.Body)
		})
	}
}

func TestFetch_MalformedBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})

	resp, err := c.FetchCoinList(context.Background())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrMalformedBody)
}

func TestFetch_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	c, err := NewHTTPClient(ts.URL, "", ts.Client())
	require.NoError(t, err)
	ts.Close()

	resp, err := c.FetchCoinList(context.Background())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestFetch_CanceledContext(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchCoinDetail(ctx, "btc-bitcoin")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}
