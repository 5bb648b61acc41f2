package service

import "errors"

// Sentinel errors controllers map onto HTTP statuses.
var (
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("record belongs to another user")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
