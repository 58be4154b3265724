package client

import "errors"

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrMalformedBody = errors.New("malformed response body")
	ErrInvalidURL    = errors.New("invalid base url")
)
