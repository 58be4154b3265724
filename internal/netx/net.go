// Package netx holds small HTTP helpers shared by the API client.
package netx

import (
	"context"
	"io"
	"net/http"
)

// Get performs a GET against url and returns the status code and the raw
// body. Non-2xx statuses are not errors here; err is set only when the request
// could not be built, sent or read.
func Get(ctx context.Context, client *http.Client, url, userAgent string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, b, nil
}

// IsSuccessful reports whether status is in the 2xx range.
func IsSuccessful(status int) bool {
	return status >= 200 && status < 300
}
