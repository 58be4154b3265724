// Package models defines the CoinPaprika payloads consumed by the client.
//
// Wire keys are snake_case; Go fields follow Go naming. Every field decodes to
// its zero value when the key is absent, and slices are normalized to empty
// (never nil) so a decoded record is always structurally complete.
package models

import (
	"errors"
	"regexp"
)

// CoinSummary is one entry of the coin list.
type CoinSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Rank     int    `json:"rank"`
	Type     string `json:"type"`
	IsActive bool   `json:"is_active"`
	IsNew    bool   `json:"is_new"`
}

// CoinList is the coin collection in API response order.
type CoinList []CoinSummary

var ErrInvalidCoinID = errors.New("invalid coin id")

// CoinPaprika ids look like "btc-bitcoin": lowercase alphanumerics and dashes.
var coinIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateCoinID rejects ids that are not safe to interpolate into a URL path
// as-is. The API client does not escape ids, so callers check them first.
func ValidateCoinID(id string) error {
	if !coinIDPattern.MatchString(id) {
		return ErrInvalidCoinID
	}
	return nil
}
