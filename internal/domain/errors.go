package domain

import "errors"

var (
	// ErrNotFound is used by lookups that must distinguish absence; content
	// queries report absence as a nil result instead.
	ErrNotFound = errors.New("not found")
	// ErrMissingParam means a query referenced a parameter the caller did not supply.
	ErrMissingParam = errors.New("missing query parameter")
	// ErrUnavailable covers transport failures and 5xx answers from the content backend.
	ErrUnavailable = errors.New("content backend unavailable")
)
