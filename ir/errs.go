package ir

import "errors"

var (
	// ErrBadType is returned when a typed accessor is applied to a
	// node of a different type.
	ErrBadType = errors.New("bad node type")

	// ErrInvalidDictKey is returned when something other than a byte
	// string is used as a dictionary key.
	ErrInvalidDictKey = errors.New("invalid dictionary key")
)
