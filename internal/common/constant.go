// Package common contains shared constants and sentinel errors used across
// coinviewer components.
package common

// DefaultBaseURL is the root of the CoinPaprika REST API. Endpoint paths are
// appended to it directly, so it must end with a slash.
const DefaultBaseURL = "https://api.coinpaprika.com/v1/"

// ErrorMessage is the single user-visible diagnostic for every failed fetch,
// whatever the underlying cause.
const ErrorMessage = "Something went wrong"
