// Package coins provides the coin list repository.
//
// The repository turns the API client's list call into a single Result:
// any transport error, non-2xx status, absent body or empty list becomes a
// Failure carrying the generic error message. An empty list is deliberately
// reported as a failure rather than as an empty success.
package coins
