package common

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP status
// codes in WriteError.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidCursor = errors.New("invalid pagination cursor")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrInvalidInput  = errors.New("invalid input")
)
