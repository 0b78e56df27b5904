package proxy

import "errors"

var (
	// ErrInvalidOperation is returned when a dispatched name cannot be
	// served, such as the bare assignment suffix.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrBadState is returned when persisted proxy state is malformed.
	ErrBadState = errors.New("bad proxy state")
)
