package parse

import (
	"errors"
)

var (
	// ErrDuplicateKey is returned under WithStrictKeys when a
	// dictionary repeats a key.
	ErrDuplicateKey = errors.New("duplicate dictionary key")

	// ErrMaxDepth is returned when nesting exceeds the configured
	// depth bound.
	ErrMaxDepth = errors.New("max depth exceeded")

	errInternal = errors.New("internal error")
)
