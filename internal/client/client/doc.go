// Package client contains the transport layer for the CoinPaprika REST API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) with the two
//     read-only calls the application needs: FetchCoinList and FetchCoinDetail.
//  2. A concrete HTTP implementation (see HTTPClient) that issues GET requests
//     against a fixed base URL and decodes JSON bodies into models.
//
// The client is a stateless request/response mapper: no retries, no caching,
// no timeouts of its own. Callers bound requests through the context.
//
// # Error Handling
//
// Non-2xx statuses are not errors; they come back as a Response with a nil
// Body so the caller decides what they mean. Errors are reserved for
// conditions where no response is available at all, exposed as sentinels that
// callers can match with errors.Is: ErrUnavailable, ErrMalformedBody.
package client
