package ir

import (
	"errors"
)

var (
	ErrBadNode     = errors.New("malformed node")
	ErrUnsupported = errors.New("unsupported value")
)
