package common

import "errors"

var (
	// ErrOperationFailed is the normalized failure every fetch collapses to:
	// transport errors, HTTP error statuses and missing or empty bodies alike.
	ErrOperationFailed = errors.New(ErrorMessage)
)
