package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/coinviewer/internal/client/models"
	"github.com/dmitrijs2005/coinviewer/internal/netx"
)

const (
	coinsPath = "coins"
)

type HTTPClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewCoinPaprikaClient builds an HTTPClient for baseURL. A missing trailing
// slash is added so endpoint paths can be appended directly.
func NewCoinPaprikaClient(baseURL, userAgent string) (*HTTPClient, error) {
	return NewHTTPClient(baseURL, userAgent, &http.Client{})
}

// NewHTTPClient is NewCoinPaprikaClient with a caller-supplied http.Client.
func NewHTTPClient(baseURL, userAgent string, hc *http.Client) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, baseURL)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{baseURL: baseURL, userAgent: userAgent, http: hc}, nil
}

// BaseURL returns the normalized base URL the client was built with.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) FetchCoinList(ctx context.Context) (*Response[models.CoinList], error) {
	return fetch[models.CoinList](ctx, c, coinsPath)
}

// FetchCoinDetail requests coins/{coinID}. The id is interpolated as given;
// see models.ValidateCoinID.
func (c *HTTPClient) FetchCoinDetail(ctx context.Context, coinID string) (*Response[models.CoinDetail], error) {
	return fetch[models.CoinDetail](ctx, c, coinsPath+"/"+coinID)
}

func fetch[T any](ctx context.Context, c *HTTPClient, path string) (*Response[T], error) {
	status, body, err := netx.Get(ctx, c.http, c.baseURL+path, c.userAgent)
	if err != nil {
		return nil, c.mapError(err)
	}

	resp := &Response[T]{StatusCode: status}
	if !resp.IsSuccessful() {
		return resp, nil
	}

	resp.Body, err = decodeBody[T](body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return resp, nil
}

func decodeBody[T any](body []byte) (*T, error) {
	b := bytes.TrimSpace(body)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *HTTPClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
